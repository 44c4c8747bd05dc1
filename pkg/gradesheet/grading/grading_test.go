package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
)

func TestCoerceMark(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"95", 95},
		{"88.5", 88.5},
		{" 70 ", 70},
		{"-5", -5},
		{"120", 120},
		{"N/A", 0},
		{"", 0},
		{"   ", 0},
		{"abc12", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Infinity", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CoerceMark(tt.input), "CoerceMark(%q)", tt.input)
	}
}

func TestParseMarkReportsFallback(t *testing.T) {
	_, ok := ParseMark("N/A")
	assert.False(t, ok)

	v, ok := ParseMark("42")
	assert.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestGradeOf(t *testing.T) {
	tests := []struct {
		pct      float64
		expected models.Grade
	}{
		{100, models.GradeAPlus},
		{90, models.GradeAPlus},
		{89.99, models.GradeA},
		{75, models.GradeA},
		{74.99, models.GradeB},
		{60, models.GradeB},
		{59.99, models.GradeC},
		{0, models.GradeC},
		{-10, models.GradeC},
		{150, models.GradeAPlus},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GradeOf(tt.pct), "GradeOf(%v)", tt.pct)
	}
}

func TestGradeOfMonotonic(t *testing.T) {
	prev := GradeOf(-20)
	for p := -20.0; p <= 120; p += 0.25 {
		g := GradeOf(p)
		assert.GreaterOrEqual(t, g.Rank(), prev.Rank(), "grade dropped at %v", p)
		prev = g
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 91.67, Round2(275.0/3))
	assert.Equal(t, 43.33, Round2(130.0/3))
	assert.Equal(t, 46.67, Round2(140.0/3))
	assert.Equal(t, 80.0, Round2(80))
	assert.Equal(t, -1.23, Round2(-1.2345))
}

func TestEnrich(t *testing.T) {
	tests := []struct {
		name       string
		rec        models.StudentRecord
		total      float64
		percentage float64
		grade      models.Grade
	}{
		{"Alice", models.StudentRecord{Name: "Alice", Math: 95, Science: 88, English: 92}, 275, 91.67, models.GradeAPlus},
		{"Bob", models.StudentRecord{Name: "Bob", Math: 30, Science: 45, English: 55}, 130, 43.33, models.GradeC},
		{"Carl", models.StudentRecord{Name: "Carl", Math: 0, Science: 70, English: 70}, 140, 46.67, models.GradeC},
		{"Dana", models.StudentRecord{Name: "Dana", Math: 80, Science: 75, English: 70}, 225, 75, models.GradeA},
		{"Eve", models.StudentRecord{Name: "Eve", Math: 60, Science: 60, English: 61}, 181, 60.33, models.GradeB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Enrich(tt.rec)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.percentage, got.Percentage)
			assert.Equal(t, tt.grade, got.Grade)
			assert.Equal(t, tt.rec.Name, got.Name)
		})
	}
}

func TestEnrichIdentity(t *testing.T) {
	marks := []float64{0, 12.5, 33, 39.99, 40, 59, 60, 79.5, 80, 100, -3, 101}
	for _, m := range marks {
		for _, s := range marks {
			rec := Enrich(models.StudentRecord{Math: m, Science: s, English: 50})
			total := m + s + 50
			assert.Equal(t, total, rec.Total)
			assert.Equal(t, math.Round(total/3*100)/100, rec.Percentage)
		}
	}
}

func TestEnrichAllPreservesOrder(t *testing.T) {
	ds := &models.Dataset{Records: []models.StudentRecord{
		{Name: "z", Math: 10},
		{Name: "a", Math: 90, Science: 90, English: 90},
		{Name: "m"},
	}}
	EnrichAll(ds)

	assert.Len(t, ds.Records, 3)
	assert.Equal(t, "z", ds.Records[0].Name)
	assert.Equal(t, "a", ds.Records[1].Name)
	assert.Equal(t, models.GradeAPlus, ds.Records[1].Grade)
	assert.Equal(t, "m", ds.Records[2].Name)
	assert.Equal(t, models.GradeC, ds.Records[2].Grade)
}
