package avatars

import (
	"context"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// stubs the presign seams so no endpoint is needed

func TestS3Store_PutUploadsToPresignedURL(t *testing.T) {
	oldPut, oldUpload := presignPutObject, uploadPresigned
	defer func() { presignPutObject, uploadPresigned = oldPut, oldUpload }()

	var presignedKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		presignedKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "http://example/upload"}, nil
	}

	var uploadedURL string
	var uploadedBody []byte
	uploadPresigned = func(url string, data []byte) error {
		uploadedURL = url
		uploadedBody = data
		return nil
	}

	st := NewS3Store(S3Options{Bucket: "avatars", Region: "us-east-1", PresignValidity: time.Minute})

	ref, err := st.Put(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if ref != presignedKey {
		t.Fatalf("ref %q must match presigned key %q", ref, presignedKey)
	}
	if !strings.HasPrefix(ref, "avatars/") {
		t.Fatalf("unexpected key layout: %q", ref)
	}
	if uploadedURL != "http://example/upload" || string(uploadedBody) != "img" {
		t.Fatalf("upload got (%q, %q)", uploadedURL, uploadedBody)
	}
}

func TestS3Store_URLReturnsPresignedGet(t *testing.T) {
	oldGet := presignGetObject
	defer func() { presignGetObject = oldGet }()

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://example/get/" + *in.Key}, nil
	}

	st := NewS3Store(S3Options{Bucket: "avatars"})

	url, err := st.URL(context.Background(), "avatars/2026/1/2/abc")
	if err != nil {
		t.Fatalf("URL error: %v", err)
	}
	if url != "http://example/get/avatars/2026/1/2/abc" {
		t.Fatalf("unexpected url: %s", url)
	}
}
