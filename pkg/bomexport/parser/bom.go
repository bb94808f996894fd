package parser

import "github.com/ukaji3/bomexport-go/pkg/bomexport/models"

const (
	// ParentUnitName is the unit of every parent line.
	ParentUnitName = "unidad"
	// WorkshopStockLocation is the stock location of every parent line.
	WorkshopStockLocation = "Main Workshop"
	// ProcessCodePrefix prefixes the product code to form the process code.
	ProcessCodePrefix = "PP-"
)

// BuildBillOfMaterials turns the component x product quantity matrix into
// bill-of-materials lines.
//
// Products are walked in column order. For each product every component
// with a non-blank quantity at (component row, product column) yields a child
// line, followed by exactly one parent line referencing those children.
// Ids come from seq, so a parent id is always greater than its children's.
// Positions outside the sheet read as blank.
func BuildBillOfMaterials(grid models.Grid, components []models.Component, products []models.Product, seq *Sequencer) []models.BillOfMaterialLine {
	lines := make([]models.BillOfMaterialLine, 0, len(products))

	for _, product := range products {
		var children []int
		for _, component := range components {
			qty := ToText(grid.At(component.Row, product.Col), "")
			if qty == "" {
				continue
			}

			id := seq.Next()
			children = append(children, id)
			lines = append(lines, models.BillOfMaterialLine{
				SequenceID:  id,
				ProductCode: component.Code,
				Name:        component.Name,
				Qty:         qty,
				UnitName:    component.UnitName,
			})
		}

		lines = append(lines, models.BillOfMaterialLine{
			SequenceID:            seq.Next(),
			ProductCode:           product.Code,
			Name:                  product.Name,
			Qty:                   "1",
			IsParent:              true,
			UnitName:              ParentUnitName,
			ProcessCode:           ProcessCodePrefix + product.Code,
			WorkshopStockLocation: WorkshopStockLocation,
			ChildSequenceIDs:      children,
		})
	}

	return lines
}
