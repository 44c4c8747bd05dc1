// Package gradesheet computes per-student totals, percentages and grades
// from a marks workbook and writes a color-coded report workbook.
package gradesheet

import "github.com/rs/zerolog"

const (
	// DefaultInputPath is the marks workbook read when no input is configured.
	DefaultInputPath = "marks.xlsx"
	// DefaultOutputPath is the report workbook written when no output is configured.
	DefaultOutputPath = "marks_report.xlsx"
)

// Options configures a grading run.
type Options struct {
	// InputPath is the marks workbook to read.
	InputPath string
	// OutputPath is the report workbook to write. Existing files are replaced.
	OutputPath string
	// SheetName selects the input sheet. Empty means the first sheet.
	SheetName string
	// Logger receives progress events. The zero value discards them.
	Logger zerolog.Logger
}

// DefaultOptions returns options using the default input and output paths.
func DefaultOptions() Options {
	return Options{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Logger:     zerolog.Nop(),
	}
}
