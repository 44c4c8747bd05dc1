package gradesheet

import (
	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/grading"
	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/report"
)

// Run loads the input workbook, validates and enriches its rows, and writes
// the color-coded report. No output is written if any step before the report
// fails.
func Run(opts Options) (*models.Dataset, error) {
	log := opts.Logger

	t, err := Load(opts.InputPath, opts.SheetName)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("input", opts.InputPath).
		Str("sheet", t.SheetName).
		Int("rows", len(t.Rows)).
		Strs("columns", t.Header).
		Msg("input loaded")

	if err := Validate(t); err != nil {
		return nil, err
	}

	ds := Coerce(t, log)
	if ds.Coerced > 0 {
		log.Warn().Int("cells", ds.Coerced).Msg("non-numeric marks treated as 0")
	}
	grading.EnrichAll(ds)

	if err := report.Write(ds, opts.OutputPath); err != nil {
		return nil, err
	}
	log.Info().
		Str("output", opts.OutputPath).
		Int("rows", len(ds.Records)).
		Msg("report written")

	return ds, nil
}
