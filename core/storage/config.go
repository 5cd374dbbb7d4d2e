package storage

// Config locates the S3 compatible bucket holding published source tables.
// Only the bucket dataset source and the publish command use it.
type Config struct {
	// Endpoint is host[:port]; an http:// or https:// scheme is stripped.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey and SecretKey are static V4 credentials.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL selects https.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds one object per revision under the dataset prefix.
	Bucket string `mapstructure:"bucket" default:"divisions"`
	// Region is optional for minio, required by some S3 providers.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing and waiting for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
