package grading

import (
	"math"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
)

// gradeThresholds is evaluated high to low, first match wins.
var gradeThresholds = []struct {
	min   float64
	grade models.Grade
}{
	{90, models.GradeAPlus},
	{75, models.GradeA},
	{60, models.GradeB},
}

// GradeOf returns the grade for a percentage.
func GradeOf(pct float64) models.Grade {
	for _, t := range gradeThresholds {
		if pct >= t.min {
			return t.grade
		}
	}
	return models.GradeC
}

// Round2 rounds x to 2 decimals, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Enrich fills Total, Percentage and Grade from the record's marks.
func Enrich(r models.StudentRecord) models.StudentRecord {
	r.Total = r.Math + r.Science + r.English
	// Average mark, not a share of the 300 maximum.
	r.Percentage = Round2(r.Total / 3)
	r.Grade = GradeOf(r.Percentage)
	return r
}

// EnrichAll enriches every record of ds in place.
func EnrichAll(ds *models.Dataset) {
	for i := range ds.Records {
		ds.Records[i] = Enrich(ds.Records[i])
	}
}
