package parser

import (
	"fmt"

	"github.com/ukaji3/bomexport-go/pkg/bomexport/models"
	"github.com/xuri/excelize/v2"
)

// GridStats summarizes the used area of a grid.
type GridStats struct {
	// Range is the used range in Excel notation (e.g. "A1:K40"), empty for a blank sheet.
	Range string
	// Rows and Cols are the grid dimensions.
	Rows int
	Cols int
	// NonEmpty counts the cells holding a value.
	NonEmpty int
}

// Stats computes the used range and fill of a grid.
func Stats(grid models.Grid) GridStats {
	stats := GridStats{Rows: len(grid)}
	for _, row := range grid {
		stats.Cols = max(stats.Cols, len(row))
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(grid)
	if minRow < 0 {
		return stats
	}
	stats.NonEmpty = countNonEmptyCells(grid, minRow, maxRow, minCol, maxCol)

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	stats.Range = fmt.Sprintf("%s:%s", startCell, endCell)
	return stats
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(grid models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range grid {
		for colIdx, cell := range row {
			if cell == nil {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(grid models.Grid, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != nil {
				count++
			}
		}
	}
	return count
}
