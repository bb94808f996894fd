package models

// Product is a finished product read column-wise from the header block.
type Product struct {
	// Col is the 0-based grid column the product was read from.
	Col int `json:"col"`
	// Name is the product display name.
	Name string `json:"name"`
	// Code is the disambiguated product code (e.g. "100-1").
	Code string `json:"code"`
	// SalePrice is the unvalidated price text.
	SalePrice string `json:"sale_price"`
}
