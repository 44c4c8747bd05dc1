// Package output provides JSON serialization of graded datasets.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/report"
)

// RecordView is a graded record together with the band of each mark.
type RecordView struct {
	models.StudentRecord
	// Bands maps subject column name to its color band.
	Bands map[string]report.Band `json:"bands"`
}

// Summary is the JSON view of a graded dataset.
type Summary struct {
	BookName     string               `json:"book_name"`
	ExtraColumns []string             `json:"extra_columns,omitempty"`
	Records      []RecordView         `json:"records"`
	Grades       map[models.Grade]int `json:"grades"`
	Coerced      int                  `json:"coerced_cells"`
}

// NewSummary builds the JSON view of ds.
func NewSummary(ds *models.Dataset) Summary {
	s := Summary{
		BookName:     ds.BookName,
		ExtraColumns: ds.ExtraColumns,
		Records:      make([]RecordView, 0, len(ds.Records)),
		Grades:       make(map[models.Grade]int),
		Coerced:      ds.Coerced,
	}
	for _, r := range ds.Records {
		marks := r.Marks()
		bands := make(map[string]report.Band, len(marks))
		for i, col := range models.SubjectColumns {
			bands[col] = report.Classify(marks[i])
		}
		s.Records = append(s.Records, RecordView{StudentRecord: r, Bands: bands})
		s.Grades[r.Grade]++
	}
	return s
}

// ToJSON serializes the summary of ds.
func ToJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	s := NewSummary(ds)
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
