package blob

import (
	"context"
	"fmt"
)

// Config selects and configures a Store.
type Config struct {
	Driver Driver
	// Root is the output directory for the filesystem driver.
	Root string
	// S3 configures the s3 driver.
	S3 S3Config
}

// Open returns the Store selected by cfg.Driver (default fs).
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverFilesystem:
		return NewFilesystem(cfg.Root)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", cfg.Driver)
	}
}
