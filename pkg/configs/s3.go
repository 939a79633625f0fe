package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// S3Config holds MinIO object storage settings.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
	Region          string `mapstructure:"region"`
}

const (
	DefaultS3Endpoint        = "localhost:9000" // default S3 endpoint
	DefaultS3AccessKeyID     = "minioadmin"     // default access key ID
	DefaultS3SecretAccessKey = "minioadmin"     // default secret access key
	DefaultS3UseSSL          = false            // use SSL by default
	DefaultS3BucketName      = "organizer"      // default bucket name
	DefaultS3Region          = "us-east-1"      // default region
)

// GetEndpointURL returns the full endpoint URL.
func (c *S3Config) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// setDefaults registers S3 config defaults.
func (c *S3Config) setDefaults(v *viper.Viper) {
	v.SetDefault("s3.endpoint", DefaultS3Endpoint)
	v.SetDefault("s3.access_key_id", DefaultS3AccessKeyID)
	v.SetDefault("s3.secret_access_key", DefaultS3SecretAccessKey)
	v.SetDefault("s3.use_ssl", DefaultS3UseSSL)
	v.SetDefault("s3.bucket_name", DefaultS3BucketName)
	v.SetDefault("s3.region", DefaultS3Region)
}
