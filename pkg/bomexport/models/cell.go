// Package models defines data structures for bill-of-materials conversion.
package models

// Value is a raw cell value as loaded from the sheet.
// It holds nil for absent cells, string for text and decimal.Decimal for numbers.
type Value = interface{}

// Grid is the positional contents of a sheet, row-major and 0-based.
type Grid [][]Value

// At returns the value at the given position, or nil when the position
// lies outside the loaded data.
func (g Grid) At(row, col int) Value {
	if row < 0 || row >= len(g) {
		return nil
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Width returns the number of columns in the given row (0 if absent).
func (g Grid) Width(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}
	return len(g[row])
}
