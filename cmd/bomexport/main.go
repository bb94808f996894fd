// Package main provides the CLI entry point for bomexport.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/bomexport-go/internal/blob"
	"github.com/ukaji3/bomexport-go/internal/config"
	"github.com/ukaji3/bomexport-go/internal/logging"
	"github.com/ukaji3/bomexport-go/internal/metrics"
	"github.com/ukaji3/bomexport-go/pkg/bomexport"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type cliFlags struct {
	outputDir   string
	sink        string
	s3Bucket    string
	s3Prefix    string
	s3Region    string
	s3Endpoint  string
	s3PathStyle bool
	logLevel    string
	logFormat   string
	metricsFile string
	quiet       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var flags cliFlags

	rootCmd := &cobra.Command{
		Use:   "bomexport [input.xlsx]",
		Short: "Convert a bill-of-materials workbook into ERP bulk import files",
		Long: `bomexport reads the first sheet of a bill-of-materials workbook and writes
seven semicolon separated import files (base_components, base_products,
account_accountManagement, default_bom, stock_inventory, stock_inventoryLine,
production_billOfMaterial).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.Flags(), &flags, args, stdout)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.outputDir, "output-dir", "o", "bulk_import", "Output directory for the fs sink")
	f.StringVar(&flags.sink, "sink", "fs", "Output sink: fs, s3, memory")
	f.StringVar(&flags.s3Bucket, "s3-bucket", "", "Target bucket for the s3 sink")
	f.StringVar(&flags.s3Prefix, "s3-prefix", "", "Key prefix for the s3 sink")
	f.StringVar(&flags.s3Region, "s3-region", "us-east-1", "Region of the s3 bucket")
	f.StringVar(&flags.s3Endpoint, "s3-endpoint", "", "Custom S3 endpoint (MinIO and friends)")
	f.BoolVar(&flags.s3PathStyle, "s3-path-style", false, "Use path-style S3 addressing")
	f.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&flags.logFormat, "log-format", "text", "Log format: text, json")
	f.StringVar(&flags.metricsFile, "metrics-file", "", "Write run metrics to this Prometheus textfile")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the summary table")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "bomexport version %s\n", version)
		},
	})

	return rootCmd
}

func run(ctx context.Context, fs *pflag.FlagSet, flags *cliFlags, args []string, stdout io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	applyFlags(fs, flags, cfg)
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	res, err := bomexport.Convert(ctx, bomexport.Options{
		InputPath: cfg.Input.Path,
		Store:     store,
		Metrics:   rec,
	})
	if cfg.Metrics.File != "" {
		if werr := rec.WriteTextfile(cfg.Metrics.File); werr != nil {
			slog.Warn("metrics not written", "error", werr)
		}
	}
	if err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintln(stdout, renderSummary(res))
	}
	return nil
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(fs *pflag.FlagSet, flags *cliFlags, cfg *config.Config) {
	strFlags := map[string]struct {
		dst *string
		val string
	}{
		"output-dir":   {&cfg.Output.Dir, flags.outputDir},
		"sink":         {&cfg.Output.Sink, flags.sink},
		"s3-bucket":    {&cfg.Output.S3Bucket, flags.s3Bucket},
		"s3-prefix":    {&cfg.Output.S3Prefix, flags.s3Prefix},
		"s3-region":    {&cfg.Output.S3Region, flags.s3Region},
		"s3-endpoint":  {&cfg.Output.S3Endpoint, flags.s3Endpoint},
		"log-level":    {&cfg.Logging.Level, flags.logLevel},
		"log-format":   {&cfg.Logging.Format, flags.logFormat},
		"metrics-file": {&cfg.Metrics.File, flags.metricsFile},
	}
	for name, f := range strFlags {
		if fs.Changed(name) {
			*f.dst = f.val
		}
	}
	if fs.Changed("s3-path-style") {
		cfg.Output.S3PathStyle = flags.s3PathStyle
	}
}

// openStore opens the configured sink. A destination that cannot be opened
// is reported as an *bomexport.OutputError keyed by the directory or bucket.
func openStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	store, err := blob.Open(ctx, blob.Config{
		Driver: blob.Driver(cfg.Output.Sink),
		Root:   cfg.Output.Dir,
		S3: blob.S3Config{
			Region:    cfg.Output.S3Region,
			Bucket:    cfg.Output.S3Bucket,
			Prefix:    cfg.Output.S3Prefix,
			Endpoint:  cfg.Output.S3Endpoint,
			PathStyle: cfg.Output.S3PathStyle,
		},
	})
	if err != nil {
		key := cfg.Output.Dir
		if blob.Driver(cfg.Output.Sink) == blob.DriverS3 {
			key = "s3://" + cfg.Output.S3Bucket + "/" + cfg.Output.S3Prefix
		}
		return nil, &bomexport.OutputError{Key: key, Err: err}
	}
	return store, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderSummary renders the written files as a table.
func renderSummary(res *bomexport.Result) string {
	rows := make([][]string, 0, len(res.Files))
	for _, f := range res.Files {
		rows = append(rows, []string{f.Name, strconv.Itoa(f.Rows), strconv.FormatInt(f.Size, 10), f.Location})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
		Headers("FILE", "ROWS", "BYTES", "LOCATION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 || col == 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	title := titleStyle.Render(fmt.Sprintf("%s (%s)", res.BookName, res.SheetName))
	footer := dimStyle.Render(fmt.Sprintf("run %s: %d components, %d products, %d BOM lines in %s",
		res.RunID, res.Components, res.Products, res.BOMLines, res.Duration.Round(time.Millisecond)))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String(), footer)
}
