// Package bomexport converts a bill-of-materials workbook into the
// semicolon separated files of an ERP bulk import.
package bomexport

import (
	"log/slog"

	"github.com/ukaji3/bomexport-go/internal/blob"
	"github.com/ukaji3/bomexport-go/internal/metrics"
	"github.com/ukaji3/bomexport-go/pkg/bomexport/parser"
)

// DefaultInputPath is the workbook read when no path is given.
const DefaultInputPath = "data/bom.xlsx"

// Options configures a conversion run.
type Options struct {
	// InputPath is the workbook to read (default: data/bom.xlsx).
	InputPath string
	// Layout locates the header block and component columns.
	// The zero value means parser.DefaultLayout().
	Layout *parser.Layout
	// Store receives the import files. Required.
	Store blob.Store
	// RunID identifies the run in logs and file metadata.
	// A random UUID is used when empty.
	RunID string
	// Metrics records run metrics when non-nil.
	Metrics *metrics.Recorder
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) inputPath() string {
	if o.InputPath == "" {
		return DefaultInputPath
	}
	return o.InputPath
}

func (o Options) layout() parser.Layout {
	if o.Layout == nil {
		return parser.DefaultLayout()
	}
	return *o.Layout
}
