package storage

// Config holds configuration for the Supabase storage backend.
type Config struct {
	// URL is the base URL of the Supabase project (e.g. https://xyz.supabase.co).
	URL string `mapstructure:"url" default:""`
	// ServiceRoleKey is the privileged server-only key used for private downloads.
	ServiceRoleKey string `mapstructure:"service_role_key" default:""`
	// BucketName is the bucket used when a request does not override it.
	BucketName string `mapstructure:"bucket_name" default:"public"`
	// Driver selects the authenticated client implementation (rest, s3).
	Driver string `mapstructure:"driver" default:"rest"`
	// S3Endpoint is the host of the S3-compatible endpoint used by the s3 driver.
	S3Endpoint string `mapstructure:"s3_endpoint" default:""`
	// S3AccessKey is the access key ID for the s3 driver.
	S3AccessKey string `mapstructure:"s3_access_key" default:""`
	// S3SecretKey is the secret access key for the s3 driver.
	S3SecretKey string `mapstructure:"s3_secret_key" default:""`
	// S3Region is the region of the S3-compatible endpoint.
	S3Region string `mapstructure:"s3_region" default:"us-east-1"`
	// S3UseSSL indicates whether to use TLS towards the S3 endpoint.
	S3UseSSL bool `mapstructure:"s3_use_ssl" default:"true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverREST = "rest"
	DriverS3   = "s3"
)

// DefaultBucket is used when no bucket name is configured at all.
const DefaultBucket = "public"

// Bucket returns the configured default bucket, falling back to DefaultBucket.
func (c Config) Bucket() string {
	if c.BucketName == "" {
		return DefaultBucket
	}
	return c.BucketName
}

// HasPublicURL reports whether public object URLs can be built.
func (c Config) HasPublicURL() bool {
	return c.URL != ""
}
