package models

import (
	"strconv"
	"strings"
)

// BillOfMaterialLine is one row of the production bill of materials.
// Child lines reference a component; the parent line closes a product and
// lists the sequence IDs of its children.
type BillOfMaterialLine struct {
	// SequenceID is the generated import id.
	SequenceID int `json:"sequence_id"`
	// ProductCode is the component code (child) or product code (parent).
	ProductCode string `json:"product_code"`
	// Name is the component or product name.
	Name string `json:"name"`
	// Qty is the quantity text taken from the matrix, "1" for parents.
	Qty string `json:"qty"`
	// IsParent marks the line that defines a sub bill of materials.
	IsParent bool `json:"is_parent"`
	// UnitName is the unit of measure.
	UnitName string `json:"unit_name"`
	// ProcessCode is the production process code (parents only).
	ProcessCode string `json:"process_code,omitempty"`
	// WorkshopStockLocation is the stock location name (parents only).
	WorkshopStockLocation string `json:"workshop_stock_location,omitempty"`
	// ChildSequenceIDs lists the children of a parent line in emission order.
	ChildSequenceIDs []int `json:"child_sequence_ids,omitempty"`
}

// ChildRefs returns the child sequence IDs joined with "|".
func (l BillOfMaterialLine) ChildRefs() string {
	if len(l.ChildSequenceIDs) == 0 {
		return ""
	}
	parts := make([]string, len(l.ChildSequenceIDs))
	for i, id := range l.ChildSequenceIDs {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "|")
}
