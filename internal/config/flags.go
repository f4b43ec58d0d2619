package config

import (
	"flag"
	"os"
	"time"

	"github.com/alebedenko/lingualink/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-m string   storage backend: memory, sqlite, postgres
//	-f string   SQLite store file path
//	-d string   PostgreSQL DSN
//	-s string   API-key HMAC secret key
//	-a string   avatar backend: dir, s3
//	-o string   avatar directory (dir backend)
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-t int      presigned URL validity, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-m", "-f", "-d", "-s", "-a", "-o", "-u", "-p", "-b", "-g", "-e", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Backend, "m", config.Backend, "storage backend (memory|sqlite|postgres)")
	fs.StringVar(&config.StorePath, "f", config.StorePath, "sqlite store file path")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.AvatarBackend, "a", config.AvatarBackend, "avatar backend (dir|s3)")
	fs.StringVar(&config.AvatarDir, "o", config.AvatarDir, "avatar directory")

	presignValidityDuration := fs.Int("t", int(config.PresignValidityDuration.Minutes()), "presign_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PresignValidityDuration = time.Duration(*presignValidityDuration) * time.Minute
}
