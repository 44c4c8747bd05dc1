package report

import (
	"fmt"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
)

// subjectPositions fixes the 1-based report column of each subject.
// Fills are applied by position, so Layout refuses any other order.
var subjectPositions = map[string]int{
	models.ColMath:    2,
	models.ColScience: 3,
	models.ColEnglish: 4,
}

// Layout is the declared column order of the report sheet.
type Layout struct {
	// Columns are the header cells, left to right.
	Columns []string
}

// NewLayout builds the report column order for a dataset's extra columns:
// Name, Math, Science, English, extras, Total, Percentage, Grade.
func NewLayout(extra []string) (*Layout, error) {
	cols := make([]string, 0, len(models.RequiredColumns)+len(extra)+len(models.DerivedColumns))
	cols = append(cols, models.RequiredColumns...)
	cols = append(cols, extra...)
	cols = append(cols, models.DerivedColumns...)

	l := &Layout{Columns: cols}
	if err := l.check(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Layout) check() error {
	for name, pos := range subjectPositions {
		if pos > len(l.Columns) || l.Columns[pos-1] != name {
			return fmt.Errorf("column %q must be at position %d", name, pos)
		}
	}
	derived := len(l.Columns) - len(models.DerivedColumns)
	for i, name := range l.Columns {
		if i >= len(models.RequiredColumns) && i < derived && (models.IsRequired(name) || models.IsDerived(name)) {
			return fmt.Errorf("extra column %q collides with a report column", name)
		}
	}
	return nil
}

// SubjectColumn returns the 1-based column of a subject, or 0.
func (l *Layout) SubjectColumn(name string) int {
	return subjectPositions[name]
}

// ExtraColumn returns the 1-based column of the i-th extra column.
func (l *Layout) ExtraColumn(i int) int {
	return len(models.RequiredColumns) + i + 1
}

// LastColumn returns the 1-based index of the right-most data column.
func (l *Layout) LastColumn() int {
	return len(l.Columns)
}

// Values returns the report cells for one record, aligned with Columns.
func (l *Layout) Values(r models.StudentRecord) []interface{} {
	vals := make([]interface{}, 0, len(l.Columns))
	vals = append(vals, r.Name, r.Math, r.Science, r.English)
	for _, c := range r.Extra {
		vals = append(vals, cellValue(c))
	}
	for len(vals) < len(l.Columns)-len(models.DerivedColumns) {
		vals = append(vals, nil)
	}
	vals = append(vals, r.Total, r.Percentage, r.Grade.String())
	return vals
}
