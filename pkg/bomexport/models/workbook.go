package models

// Workbook represents the loaded first sheet of a workbook.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the name of the sheet the grid was read from.
	SheetName string `json:"sheet_name"`
	// Grid holds the sheet cells.
	Grid Grid `json:"-"`
}
