package bomexport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/bomexport-go/internal/logging"
	"github.com/ukaji3/bomexport-go/internal/metrics"
	"github.com/ukaji3/bomexport-go/pkg/bomexport/models"
	"github.com/ukaji3/bomexport-go/pkg/bomexport/output"
	"github.com/ukaji3/bomexport-go/pkg/bomexport/parser"
	"github.com/xuri/excelize/v2"
)

// FileResult describes one written import file.
type FileResult struct {
	Name     string
	Rows     int
	Size     int64
	Location string
}

// Result summarizes a conversion run.
type Result struct {
	RunID      string
	BookName   string
	SheetName  string
	Range      string
	Components int
	Products   int
	BOMLines   int
	Files      []FileResult
	Duration   time.Duration
}

// Load reads the first sheet of the workbook at path.
func Load(path string) (*models.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewInputError(path, ErrInputNotFound)
		}
		return nil, NewInputError(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewInputError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewInputError(path, ErrNoSheets)
	}

	grid, err := parser.LoadGrid(f, sheets[0])
	if err != nil {
		return nil, NewInputError(path, err)
	}

	return &models.Workbook{
		BookName:  filepath.Base(path),
		SheetName: sheets[0],
		Grid:      grid,
	}, nil
}

// Convert runs the whole conversion: it loads the workbook, extracts
// components and products, builds the bill of materials and writes the
// seven import files in a fixed order.
//
// The first error aborts the run. Files written before the failure are left
// in place. Counters are created per call, so repeated runs over the same
// input write identical files.
func Convert(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	ctx = logging.WithRunID(ctx, runID)

	r := &run{
		writer:  output.NewWriter(opts.Store, map[string]string{"run_id": runID}),
		metrics: opts.Metrics,
		logger:  logging.FromContext(ctx, opts.Logger),
		result:  &Result{RunID: runID},
	}

	err := r.convert(ctx, opts)
	r.result.Duration = time.Since(start)
	r.metrics.Finish(r.result.Duration, err)
	if err != nil {
		return r.result, err
	}

	r.logger.Info("conversion finished",
		"files", len(r.result.Files),
		"bom_lines", r.result.BOMLines,
		"duration", r.result.Duration)
	return r.result, nil
}

type run struct {
	writer  *output.Writer
	metrics *metrics.Recorder
	logger  *slog.Logger
	result  *Result
}

func (r *run) convert(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return errors.New("bomexport: no output store configured")
	}

	path := opts.inputPath()
	r.logger.Debug("loading workbook", "path", path)
	wb, err := Load(path)
	if err != nil {
		return err
	}

	stats := parser.Stats(wb.Grid)
	r.result.BookName = wb.BookName
	r.result.SheetName = wb.SheetName
	r.result.Range = stats.Range
	r.logger.Info("workbook loaded",
		"book", wb.BookName,
		"sheet", wb.SheetName,
		"range", stats.Range,
		"cells", stats.NonEmpty)

	layout := opts.layout()
	components := parser.ExtractComponents(wb.Grid, layout)
	products := parser.ExtractProducts(wb.Grid, layout, parser.NewCodeRegistry())
	r.result.Components = len(components)
	r.result.Products = len(products)
	r.logger.Debug("sheet extracted", "components", len(components), "products", len(products))

	if err := emit(ctx, r, output.BaseComponents, components); err != nil {
		return err
	}
	if err := emit(ctx, r, output.BaseProducts, products); err != nil {
		return err
	}
	if err := emit(ctx, r, output.AccountManagement, products); err != nil {
		return err
	}
	if err := emit(ctx, r, output.DefaultBillOfMaterials, products); err != nil {
		return err
	}
	if err := emit(ctx, r, output.StockInventory, []output.Inventory{output.InitialInventory()}); err != nil {
		return err
	}
	if err := emit(ctx, r, output.StockInventoryLines, components); err != nil {
		return err
	}

	lines := parser.BuildBillOfMaterials(wb.Grid, components, products, parser.NewSequencer(parser.FirstSequenceID))
	r.result.BOMLines = len(lines)
	r.metrics.BOMLines(len(lines)-len(products), len(products))

	if err := emit(ctx, r, output.ProductionBillOfMaterials, lines); err != nil {
		return err
	}

	return r.verify(ctx)
}

// verify lists the sink and checks that every written file is present with
// the size that was put.
func (r *run) verify(ctx context.Context) error {
	infos, err := r.writer.Store().List(ctx, "")
	if err != nil {
		return &OutputError{Key: string(r.writer.Store().Driver()), Err: fmt.Errorf("list written files: %w", err)}
	}

	stored := make(map[string]int64, len(infos))
	for _, info := range infos {
		stored[info.Key] = info.Size
	}
	for _, f := range r.result.Files {
		size, ok := stored[f.Name]
		if !ok {
			return &OutputError{Key: f.Name, Err: errors.New("not found after write")}
		}
		if size != f.Size {
			return &OutputError{Key: f.Name, Err: fmt.Errorf("stored size %d, wrote %d", size, f.Size)}
		}
	}

	r.logger.Debug("import files verified", "files", len(r.result.Files))
	return nil
}

func emit[T any](ctx context.Context, r *run, table output.Table[T], records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := table.Save(ctx, r.writer, records)
	if err != nil {
		return err
	}

	r.result.Files = append(r.result.Files, FileResult{
		Name:     table.FileName(),
		Rows:     len(records),
		Size:     info.Size,
		Location: info.Location,
	})
	r.metrics.RowsWritten(table.Name, len(records))
	r.logger.Info("import file written",
		"file", table.FileName(),
		"rows", len(records),
		"location", info.Location)
	return nil
}
