package models

// StudentRecord represents one student row with its derived metrics.
type StudentRecord struct {
	// Row is the 1-based row index in the input sheet.
	Row int `json:"row"`
	// Name is the student identifier, passed through as-is.
	Name string `json:"name"`
	// Math is the coerced Math mark.
	Math float64 `json:"math"`
	// Science is the coerced Science mark.
	Science float64 `json:"science"`
	// English is the coerced English mark.
	English float64 `json:"english"`
	// Extra holds the pass-through cells aligned with Dataset.ExtraColumns.
	Extra []Cell `json:"extra,omitempty"`
	// Total is Math + Science + English.
	Total float64 `json:"total"`
	// Percentage is Total / 3 rounded to 2 decimals.
	Percentage float64 `json:"percentage"`
	// Grade is the rank derived from Percentage.
	Grade Grade `json:"grade"`
}

// Marks returns the three subject marks in SubjectColumns order.
func (r StudentRecord) Marks() [3]float64 {
	return [3]float64{r.Math, r.Science, r.English}
}

// Dataset is an ordered sequence of records. Order matches the input rows.
type Dataset struct {
	// BookName is the input workbook file name (no path).
	BookName string `json:"book_name"`
	// ExtraColumns lists input columns other than RequiredColumns, in input order.
	ExtraColumns []string `json:"extra_columns,omitempty"`
	// Records contains one entry per input data row.
	Records []StudentRecord `json:"records"`
	// Coerced counts mark cells that were not numbers and became 0.
	Coerced int `json:"coerced_cells"`
}
