package models

// Table is the raw content of an input sheet before validation.
type Table struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// Header is the first row of the sheet.
	Header []string `json:"header"`
	// Rows contains the non-blank data rows, each padded to len(Header).
	Rows []Row `json:"rows"`
}

// Row is one data row of the input sheet.
type Row struct {
	// Num is the 1-based row index in the input sheet.
	Num int `json:"num"`
	// Cells are the row's cells, aligned with Table.Header.
	Cells []Cell `json:"cells"`
}

// Value returns the raw content of cell idx, or "" when out of range.
func (r Row) Value(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return r.Cells[idx].Value
}

// Values returns the raw content of every cell.
func (r Row) Values() []string {
	vals := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		vals[i] = c.Value
	}
	return vals
}

// Index returns the 0-based position of column name in the header, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
