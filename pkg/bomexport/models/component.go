package models

// Component is a purchasable raw material listed below the header rows.
type Component struct {
	// Row is the 0-based grid row the component was read from.
	Row int `json:"row"`
	// Name is the component display name.
	Name string `json:"name"`
	// Code is the component code, the name when the code cell is blank.
	Code string `json:"code"`
	// UnitName is the unit of measure.
	UnitName string `json:"unit_name"`
	// PurchasePrice is the unvalidated price text.
	PurchasePrice string `json:"purchase_price"`
	// Qty is the stock on hand, "0" when blank.
	Qty string `json:"qty"`
}
