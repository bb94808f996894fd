package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/bomexport-go/pkg/bomexport/models"
	"github.com/xuri/excelize/v2"
)

// LoadGrid reads a sheet into a dense positional grid.
// Cell values are read raw (no number formats applied) and typed as text,
// numbers or absent, mirroring what the workbook encodes.
func LoadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		values := make([]models.Value, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			values[colIdx] = parseValue(raw, cellType)
		}
		grid[rowIdx] = values
	}

	return grid, nil
}

// parseValue converts a raw cell string into a grid value.
// Numeric cells become decimal.Decimal, booleans become "true"/"false" and
// everything else stays text.
func parseValue(s string, cellType excelize.CellType) models.Value {
	if s == "" {
		return nil
	}
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		// Stored doubles such as 9.9900000000000002 are reduced to their
		// shortest round-trip form, the way spreadsheet apps display them.
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return decimal.NewFromFloat(f)
		}
	case excelize.CellTypeBool:
		switch s {
		case "1":
			return "true"
		case "0":
			return "false"
		}
	}
	return s
}
