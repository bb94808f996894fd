package parser

import "github.com/ukaji3/bomexport-go/pkg/bomexport/models"

// ExtractProducts maps the header block columns into products.
// The name row decides how far the block reaches. Columns with neither name
// nor code are skipped; every other code is made
// unique through codes, so the first occurrence always carries "-1".
func ExtractProducts(grid models.Grid, layout Layout, codes *CodeRegistry) []models.Product {
	width := grid.Width(layout.NameRow)

	var result []models.Product
	for col := layout.ProductColumn; col < width; col++ {
		name := ToText(grid.At(layout.NameRow, col), "")
		code := codeText(grid.At(layout.CodeRow, col))
		if name == "" && code == "" {
			continue
		}

		result = append(result, models.Product{
			Col:       col,
			Name:      name,
			Code:      codes.Unique(code),
			SalePrice: ToText(grid.At(layout.PriceRow, col), ""),
		})
	}
	return result
}
