package avatars

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for tests: the S3 client construction and presign calls can be
// stubbed without a live endpoint.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	uploadPresigned = uploadToPresignedURL
)

// S3Options configures the S3-compatible backend (MinIO works too).
type S3Options struct {
	RootUser        string
	RootPassword    string
	Bucket          string
	Region          string
	BaseEndpoint    string
	PresignValidity time.Duration
}

// S3Store uploads avatars through presigned PUT URLs and resolves refs to
// presigned GET URLs.
type S3Store struct {
	opts S3Options
}

func NewS3Store(opts S3Options) *S3Store {
	if opts.PresignValidity == 0 {
		opts.PresignValidity = 15 * time.Minute
	}
	return &S3Store{opts: opts}
}

func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("avatars/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *S3Store) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.opts.RootUser,
			s.opts.RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.opts.BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func (s *S3Store) Put(ctx context.Context, data []byte) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.opts.Bucket
	key := randomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.opts.PresignValidity))
	if err != nil {
		return "", err
	}

	if err := uploadPresigned(req.URL, data); err != nil {
		return "", err
	}

	return key, nil
}

func (s *S3Store) URL(ctx context.Context, ref string) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.opts.Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &ref,
	}, s3.WithPresignExpires(s.opts.PresignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func uploadToPresignedURL(url string, data []byte) error {
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
