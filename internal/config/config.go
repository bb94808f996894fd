// Package config loads the converter settings from the environment.
// An optional .env file is read first; every setting has a default that
// reproduces the standard layout (data/bom.xlsx -> bulk_import/).
package config

// Config holds all converter configuration.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

// InputConfig locates the workbook.
type InputConfig struct {
	// Path is the workbook to convert (default: data/bom.xlsx)
	Path string `env:"BOMEXPORT_INPUT" default:"data/bom.xlsx"`
}

// OutputConfig selects where the import files are written.
type OutputConfig struct {
	// Dir is the output directory for the fs sink (default: bulk_import)
	Dir string `env:"BOMEXPORT_OUTPUT_DIR" default:"bulk_import"`

	// Sink is the blob driver: fs, s3 or memory (default: fs)
	Sink string `env:"BOMEXPORT_SINK" default:"fs"`

	// S3Bucket is the target bucket when Sink is s3
	S3Bucket string `env:"BOMEXPORT_S3_BUCKET"`

	// S3Prefix is prepended to every object key
	S3Prefix string `env:"BOMEXPORT_S3_PREFIX"`

	// S3Region is the bucket region (default: us-east-1)
	S3Region string `env:"BOMEXPORT_S3_REGION" default:"us-east-1"`

	// S3Endpoint overrides the S3 endpoint (MinIO and friends)
	S3Endpoint string `env:"BOMEXPORT_S3_ENDPOINT"`

	// S3PathStyle forces path-style addressing (default: false)
	S3PathStyle bool `env:"BOMEXPORT_S3_PATH_STYLE" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	// File is a node-exporter textfile to write run metrics to (disabled when empty)
	File string `env:"BOMEXPORT_METRICS_FILE"`
}
