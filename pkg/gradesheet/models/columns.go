// Package models defines data structures for grade computation and reporting.
package models

// Input column names. Matching is case- and name-exact.
const (
	ColName    = "Name"
	ColMath    = "Math"
	ColScience = "Science"
	ColEnglish = "English"
)

// Derived column names appended to the report.
const (
	ColTotal      = "Total"
	ColPercentage = "Percentage"
	ColGrade      = "Grade"
)

// RequiredColumns lists the columns every input sheet must carry.
var RequiredColumns = []string{ColName, ColMath, ColScience, ColEnglish}

// SubjectColumns lists the mark columns in report order.
var SubjectColumns = []string{ColMath, ColScience, ColEnglish}

// DerivedColumns lists the computed columns in report order.
var DerivedColumns = []string{ColTotal, ColPercentage, ColGrade}

// IsRequired reports whether name is one of RequiredColumns.
func IsRequired(name string) bool {
	for _, c := range RequiredColumns {
		if c == name {
			return true
		}
	}
	return false
}

// IsDerived reports whether name is one of DerivedColumns.
func IsDerived(name string) bool {
	for _, c := range DerivedColumns {
		if c == name {
			return true
		}
	}
	return false
}
