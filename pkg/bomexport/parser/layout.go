// Package parser turns a bill-of-materials sheet into components, products
// and production BOM lines.
package parser

// Layout holds the fixed positions of the bill-of-materials sheet.
// All indices are 0-based.
type Layout struct {
	// HeaderRows is the number of rows above the first component row.
	HeaderRows int
	// ProductColumn is the first column holding a product.
	ProductColumn int
	// PriceRow, CodeRow and NameRow locate the product header block.
	PriceRow int
	CodeRow  int
	NameRow  int
	// Component columns.
	ComponentCodeCol  int
	ComponentNameCol  int
	ComponentPriceCol int
	ComponentQtyCol   int
	ComponentUnitCol  int
}

// DefaultLayout returns the layout of the standard BOM workbook.
func DefaultLayout() Layout {
	return Layout{
		HeaderRows:        3,
		ProductColumn:     5,
		PriceRow:          0,
		CodeRow:           1,
		NameRow:           2,
		ComponentCodeCol:  0,
		ComponentNameCol:  1,
		ComponentPriceCol: 2,
		ComponentQtyCol:   3,
		ComponentUnitCol:  4,
	}
}
