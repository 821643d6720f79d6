package models

// Record is one data row keyed by its header label.
type Record map[string]interface{}

// Preview is the import preview of the first sheet of a workbook.
type Preview struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the previewed sheet.
	SheetName string `json:"sheet_name"`
	// Range is the used range in A1 notation (e.g. "A1:D8"), empty for a blank sheet.
	Range string `json:"range,omitempty"`
	// Bounds is Range as coordinates.
	Bounds Bounds `json:"bounds"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// Columns lists the keys of the first record in column order.
	Columns []string `json:"columns"`
	// Data holds the rows below the header.
	Data []Record `json:"data"`
	// RowCount is len(Data).
	RowCount int `json:"rowCount"`
}
