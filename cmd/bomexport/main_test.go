package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/bomexport-go/internal/config"
	"github.com/ukaji3/bomexport-go/pkg/bomexport"
	"github.com/xuri/excelize/v2"
)

func writeBook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "F1", 9.99)
	f.SetCellValue(sheetName, "F2", 100)
	f.SetCellValue(sheetName, "F3", "Widget")
	f.SetCellValue(sheetName, "A4", "S1")
	f.SetCellValue(sheetName, "B4", "Screw")
	f.SetCellValue(sheetName, "E4", "pcs")
	f.SetCellValue(sheetName, "F4", 4)

	path := filepath.Join(t.TempDir(), "bom.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestRootCmd_WritesFiles(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	metricsFile := filepath.Join(t.TempDir(), "bomexport.prom")

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout)
	cmd.SetArgs([]string{writeBook(t), "-o", outDir, "--metrics-file", metricsFile, "--log-level", "error"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 7 {
		t.Errorf("wrote %d files, want 7", len(entries))
	}

	out := stdout.String()
	for _, want := range []string{"production_billOfMaterial.csv", "FILE", "bom.xlsx (Sheet1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	if _, err := os.Stat(metricsFile); err != nil {
		t.Errorf("metrics file not written: %v", err)
	}
}

func TestRootCmd_Quiet(t *testing.T) {
	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout)
	cmd.SetArgs([]string{writeBook(t), "--sink", "memory", "--quiet", "--log-level", "error"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run printed %q", stdout.String())
	}
}

func TestRootCmd_MissingInput(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	missing := filepath.Join(t.TempDir(), "missing.xlsx")
	cmd.SetArgs([]string{missing, "--sink", "memory", "--log-level", "error"})

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("Execute() should fail for a missing workbook")
	}
	if !strings.Contains(err.Error(), "missing.xlsx") {
		t.Errorf("error should name the input, got: %v", err)
	}
}

func TestRootCmd_UnwritableOutputDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plainfile")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	outDir := filepath.Join(file, "bulk_import")

	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{writeBook(t), "-o", outDir, "--log-level", "error"})
	err := cmd.ExecuteContext(context.Background())
	if !errors.Is(err, bomexport.ErrOutput) {
		t.Fatalf("Execute() error = %v, want ErrOutput", err)
	}

	var outErr *bomexport.OutputError
	if !errors.As(err, &outErr) {
		t.Fatalf("error %T is not *OutputError", err)
	}
	if outErr.Key != outDir {
		t.Errorf("Key = %q, want %q", outErr.Key, outDir)
	}
}

func TestOpenStore(t *testing.T) {
	tests := []struct {
		name    string
		output  config.OutputConfig
		wantErr bool
	}{
		{"fs", config.OutputConfig{Sink: "fs", Dir: filepath.Join(t.TempDir(), "out")}, false},
		{"memory", config.OutputConfig{Sink: "memory"}, false},
		{"s3 without bucket", config.OutputConfig{Sink: "s3"}, true},
		{"unknown sink", config.OutputConfig{Sink: "ftp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := openStore(context.Background(), &config.Config{Output: tt.output})
			if !tt.wantErr {
				if err != nil || store == nil {
					t.Fatalf("openStore() = %v, %v", store, err)
				}
				return
			}
			if !errors.Is(err, bomexport.ErrOutput) {
				t.Errorf("openStore() error = %v, want ErrOutput", err)
			}
		})
	}
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"a.xlsx", "b.xlsx"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("Execute() should reject two inputs")
	}
}

func TestVersionCmd(t *testing.T) {
	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout)
	cmd.SetArgs([]string{"version"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := stdout.String(); got != "bomexport version dev\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{
		Input:   config.InputConfig{Path: "data/bom.xlsx"},
		Output:  config.OutputConfig{Dir: "from-env", Sink: "fs", S3Region: "eu-west-1"},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
	}

	cmd := newRootCmd(&bytes.Buffer{})
	fs := cmd.Flags()
	if err := fs.Parse([]string{"--sink", "s3", "--s3-bucket", "imports", "--s3-path-style"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	flags := &cliFlags{}
	flags.sink, _ = fs.GetString("sink")
	flags.s3Bucket, _ = fs.GetString("s3-bucket")
	flags.s3PathStyle, _ = fs.GetBool("s3-path-style")
	flags.outputDir, _ = fs.GetString("output-dir")
	flags.s3Region, _ = fs.GetString("s3-region")
	applyFlags(fs, flags, cfg)

	if cfg.Output.Sink != "s3" || cfg.Output.S3Bucket != "imports" || !cfg.Output.S3PathStyle {
		t.Errorf("flags not applied: %+v", cfg.Output)
	}
	// Unset flags keep the environment values.
	if cfg.Output.Dir != "from-env" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "from-env")
	}
	if cfg.Output.S3Region != "eu-west-1" {
		t.Errorf("Output.S3Region = %q, want %q", cfg.Output.S3Region, "eu-west-1")
	}
}

func TestRenderSummary(t *testing.T) {
	res := &bomexport.Result{
		RunID:     "r1",
		BookName:  "bom.xlsx",
		SheetName: "Sheet1",
		Files: []bomexport.FileResult{
			{Name: "base_components.csv", Rows: 12, Size: 2048, Location: "bulk_import/base_components.csv"},
		},
		Components: 12,
		Duration:   1500 * time.Millisecond,
	}

	out := renderSummary(res)
	for _, want := range []string{"base_components.csv", "12", "2048", "run r1", "1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
