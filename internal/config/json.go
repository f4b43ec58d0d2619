package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/alebedenko/lingualink/internal/flagx"
	"github.com/alebedenko/lingualink/internal/timex"
)

// JsonConfig is the DTO for the optional JSON config file. Interval fields
// use timex.Duration so they can be written either as "15m" or as integer
// nanoseconds; values are copied into the runtime Config afterwards.
type JsonConfig struct {
	Backend                 string         `json:"backend"`
	StorePath               string         `json:"store_path"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	AvatarBackend           string         `json:"avatar_backend"`
	AvatarDir               string         `json:"avatar_dir"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
	PresignValidityDuration timex.Duration `json:"presign_validity_duration"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded. An unreadable or invalid file
// panics, matching the flag-parsing failure mode.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.Backend = c.Backend
	config.StorePath = c.StorePath
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AvatarBackend = c.AvatarBackend
	config.AvatarDir = c.AvatarDir
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.PresignValidityDuration = time.Duration(c.PresignValidityDuration.Duration)
}
