package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/report"
)

func TestNewSummary(t *testing.T) {
	ds := &models.Dataset{
		BookName: "marks.xlsx",
		Records: []models.StudentRecord{
			{Name: "Alice", Math: 95, Science: 88, English: 92, Total: 275, Percentage: 91.67, Grade: models.GradeAPlus},
			{Name: "Bob", Math: 30, Science: 45, English: 55, Total: 130, Percentage: 43.33, Grade: models.GradeC},
			{Name: "Carl", Math: 0, Science: 70, English: 70, Total: 140, Percentage: 46.67, Grade: models.GradeC},
		},
		Coerced: 1,
	}

	s := NewSummary(ds)
	require.Len(t, s.Records, 3)
	assert.Equal(t, report.BandFail, s.Records[1].Bands["Math"])
	assert.Equal(t, report.BandAverage, s.Records[1].Bands["English"])
	assert.Equal(t, report.BandGood, s.Records[2].Bands["Science"])
	assert.Equal(t, 2, s.Grades[models.GradeC])
	assert.Equal(t, 1, s.Grades[models.GradeAPlus])
}

func TestToJSON(t *testing.T) {
	ds := &models.Dataset{
		BookName: "marks.xlsx",
		Records: []models.StudentRecord{
			{Row: 2, Name: "Alice", Math: 95, Science: 88, English: 92, Total: 275, Percentage: 91.67, Grade: models.GradeAPlus},
		},
	}

	data, err := ToJSON(ds, false)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "marks.xlsx", got["book_name"])

	records := got["records"].([]interface{})
	require.Len(t, records, 1)
	rec := records[0].(map[string]interface{})
	assert.Equal(t, "Alice", rec["name"])
	assert.Equal(t, 91.67, rec["percentage"])
	assert.Equal(t, "A+", rec["grade"])
	assert.Equal(t, "Excellent", rec["bands"].(map[string]interface{})["Math"])

	pretty, err := ToJSON(ds, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"book_name\"")
}
