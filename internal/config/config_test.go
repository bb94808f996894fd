package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Input.Path != "data/bom.xlsx" {
		t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "data/bom.xlsx")
	}
	if cfg.Output.Dir != "bulk_import" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "bulk_import")
	}
	if cfg.Output.Sink != "fs" {
		t.Errorf("Output.Sink = %q, want %q", cfg.Output.Sink, "fs")
	}
	if cfg.Output.S3Region != "us-east-1" {
		t.Errorf("Output.S3Region = %q, want %q", cfg.Output.S3Region, "us-east-1")
	}
	if cfg.Output.S3PathStyle {
		t.Error("Output.S3PathStyle = true, want false")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
	if cfg.Metrics.File != "" {
		t.Errorf("Metrics.File = %q, want empty", cfg.Metrics.File)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("BOMEXPORT_INPUT", "in/matrix.xlsx")
	t.Setenv("BOMEXPORT_SINK", "s3")
	t.Setenv("BOMEXPORT_S3_BUCKET", "imports")
	t.Setenv("BOMEXPORT_S3_PATH_STYLE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Input.Path != "in/matrix.xlsx" {
		t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "in/matrix.xlsx")
	}
	if cfg.Output.Sink != "s3" || cfg.Output.S3Bucket != "imports" {
		t.Errorf("Output = %+v, want s3/imports", cfg.Output)
	}
	if !cfg.Output.S3PathStyle {
		t.Error("Output.S3PathStyle = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "BOMEXPORT_OUTPUT_DIR=export\nBOMEXPORT_METRICS_FILE=/tmp/bomexport.prom\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// Registered so t.Setenv restores the variables godotenv sets.
	t.Setenv("BOMEXPORT_OUTPUT_DIR", "")
	t.Setenv("BOMEXPORT_METRICS_FILE", "")
	os.Unsetenv("BOMEXPORT_OUTPUT_DIR")
	os.Unsetenv("BOMEXPORT_METRICS_FILE")

	cfg, err := Load(envFile, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Dir != "export" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "export")
	}
	if cfg.Metrics.File != "/tmp/bomexport.prom" {
		t.Errorf("Metrics.File = %q, want %q", cfg.Metrics.File, "/tmp/bomexport.prom")
	}
}

func TestLoad_EnvironmentWinsOverEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("BOMEXPORT_INPUT=from-file.xlsx\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("BOMEXPORT_INPUT", "from-env.xlsx")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.Path != "from-env.xlsx" {
		t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "from-env.xlsx")
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("BOMEXPORT_S3_PATH_STYLE", "sometimes")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail for a non-boolean path style")
	}
	if !strings.Contains(err.Error(), "BOMEXPORT_S3_PATH_STYLE") {
		t.Errorf("error should name the variable, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Input:   InputConfig{Path: "data/bom.xlsx"},
			Output:  OutputConfig{Dir: "bulk_import", Sink: "fs"},
			Logging: LoggingConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			modify: func(c *Config) {},
		},
		{
			name:   "memory sink needs nothing else",
			modify: func(c *Config) { c.Output.Sink = "memory"; c.Output.Dir = "" },
		},
		{
			name:    "empty input",
			modify:  func(c *Config) { c.Input.Path = "  " },
			wantErr: "BOMEXPORT_INPUT",
		},
		{
			name:    "unknown sink",
			modify:  func(c *Config) { c.Output.Sink = "ftp" },
			wantErr: "BOMEXPORT_SINK",
		},
		{
			name:    "s3 without bucket",
			modify:  func(c *Config) { c.Output.Sink = "s3" },
			wantErr: "BOMEXPORT_S3_BUCKET",
		},
		{
			name:    "fs without dir",
			modify:  func(c *Config) { c.Output.Dir = "" },
			wantErr: "BOMEXPORT_OUTPUT_DIR",
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() should fail with %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		Input:   InputConfig{Path: "x.xlsx"},
		Output:  OutputConfig{Dir: "out", Sink: "fs"},
		Logging: LoggingConfig{Level: "loud", Format: "yaml"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "LOG_LEVEL") || !strings.Contains(msg, "LOG_FORMAT") {
		t.Errorf("error should list every problem, got: %v", err)
	}
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{
		Input:   InputConfig{Path: "data/bom.xlsx"},
		Output:  OutputConfig{Dir: "bulk_import", Sink: "fs"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}

	s := cfg.String()
	for _, want := range []string{"data/bom.xlsx", "bulk_import", `Sink: "fs"`} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestLoad_ValidateAfterOverride(t *testing.T) {
	t.Setenv("BOMEXPORT_SINK", "s3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() should reject the s3 sink without a bucket")
	}

	cfg.Output.S3Bucket = "imports"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after override error = %v", err)
	}
}
