package parser

import "github.com/ukaji3/bomexport-go/pkg/bomexport/models"

// ExtractComponents maps the rows below the header block into components.
// A row is skipped only when code, name, unit, price and quantity are all blank.
func ExtractComponents(grid models.Grid, layout Layout) []models.Component {
	var result []models.Component
	for rowIdx := layout.HeaderRows; rowIdx < len(grid); rowIdx++ {
		name := ToText(grid.At(rowIdx, layout.ComponentNameCol), "")
		// A blank code takes the name; a numeric zero is a code of its own.
		code := ToText(grid.At(rowIdx, layout.ComponentCodeCol), "")
		if code == "" {
			code = name
		}
		unit := ToText(grid.At(rowIdx, layout.ComponentUnitCol), "")
		price := ToText(grid.At(rowIdx, layout.ComponentPriceCol), "")
		qty := ToText(grid.At(rowIdx, layout.ComponentQtyCol), "")

		if name == "" && code == "" && unit == "" && price == "" && qty == "" {
			continue
		}
		if qty == "" {
			qty = "0"
		}

		result = append(result, models.Component{
			Row:           rowIdx,
			Name:          name,
			Code:          code,
			UnitName:      unit,
			PurchasePrice: price,
			Qty:           qty,
		})
	}
	return result
}
