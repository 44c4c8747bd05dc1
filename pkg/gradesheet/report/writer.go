package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the name of the report sheet.
const DefaultSheetName = "Sheet1"

// Legend placement relative to the data block.
const (
	legendRow    = 2
	legendOffset = 2
	legendTitle  = "Color Legend"
)

// Report is a rendered, unsaved report workbook.
type Report struct {
	File   *excelize.File
	Layout *Layout
	Sheet  string

	styles *styleSet
}

// Close releases the underlying workbook.
func (r *Report) Close() error {
	return r.File.Close()
}

// FillStyle returns the style ID applied to subject cells in band b.
func (r *Report) FillStyle(b Band) int {
	return r.styles.fill[b]
}

// LegendStyle returns the style ID of the legend row for band b.
func (r *Report) LegendStyle(b Band) int {
	return r.styles.legend[b]
}

// TitleStyle returns the style ID of the legend title cell.
func (r *Report) TitleStyle() int {
	return r.styles.header
}

// Write builds the report for ds and saves it to path, replacing any
// existing file. The parent directory is created if missing.
func Write(ds *models.Dataset, path string) error {
	r, err := Build(ds)
	if err != nil {
		var re *Error
		if errors.As(err, &re) {
			re.Path = path
		}
		return err
	}
	defer r.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &Error{Path: path, Step: StepWrite, Err: err}
	}
	if err := r.File.SaveAs(path); err != nil {
		return &Error{Path: path, Step: StepWrite, Err: err}
	}
	return nil
}

// Build renders ds into a new in-memory workbook: header row, one row per
// record, band fills on the subject cells and the legend block.
// The caller must Close the returned report.
func Build(ds *models.Dataset) (*Report, error) {
	layout, err := NewLayout(ds.ExtraColumns)
	if err != nil {
		return nil, &Error{Step: StepLayout, Err: err}
	}

	r := &Report{File: excelize.NewFile(), Layout: layout, Sheet: DefaultSheetName}
	if err := r.render(ds); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Report) render(ds *models.Dataset) error {
	f, sheet := r.File, r.Sheet

	styles, err := newStyleSet(f)
	if err != nil {
		return &Error{Step: StepStyle, Err: err}
	}
	r.styles = styles

	if err := writeRow(f, sheet, 1, stringsToValues(r.Layout.Columns)); err != nil {
		return &Error{Step: StepWrite, Err: err}
	}

	for i, rec := range ds.Records {
		row := i + 2
		if err := writeRow(f, sheet, row, r.Layout.Values(rec)); err != nil {
			return &Error{Step: StepWrite, Err: err}
		}
		if err := applyFills(f, sheet, r.Layout, styles, row, rec); err != nil {
			return &Error{Step: StepStyle, Err: err}
		}
		if err := applyNumberFormats(f, sheet, r.Layout, styles, row, rec); err != nil {
			return &Error{Step: StepStyle, Err: err}
		}
	}

	legendCol := r.Layout.LastColumn() + legendOffset
	if err := renderLegend(f, sheet, legendCol, styles); err != nil {
		return &Error{Step: StepStyle, Err: err}
	}

	lastRow := len(ds.Records) + 1
	if legendEnd := legendRow + len(Bands); legendEnd > lastRow {
		lastRow = legendEnd
	}
	if err := setPrintArea(f, sheet, legendCol, lastRow); err != nil {
		return &Error{Step: StepStyle, Err: err}
	}
	return nil
}

// writeRow sets the cells of one sheet row, skipping nil values.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for colIdx, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// applyFills colors the Math, Science and English cells of one data row.
func applyFills(f *excelize.File, sheet string, layout *Layout, styles *styleSet, row int, rec models.StudentRecord) error {
	marks := rec.Marks()
	for i, subject := range models.SubjectColumns {
		col := layout.SubjectColumn(subject)
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.fill[Classify(marks[i])]); err != nil {
			return fmt.Errorf("style %s: %w", cell, err)
		}
	}
	return nil
}

// applyNumberFormats restores the source number format of numeric extra cells.
func applyNumberFormats(f *excelize.File, sheet string, layout *Layout, styles *styleSet, row int, rec models.StudentRecord) error {
	for i, c := range rec.Extra {
		if !c.Formatted() {
			continue
		}
		id, err := styles.numberFormat(f, c)
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(layout.ExtraColumn(i), row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
			return fmt.Errorf("style %s: %w", cell, err)
		}
	}
	return nil
}

// renderLegend writes the title and one row per band starting at legendRow.
func renderLegend(f *excelize.File, sheet string, col int, styles *styleSet) error {
	title, err := excelize.CoordinatesToCellName(col, legendRow)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, title, legendTitle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, title, title, styles.header); err != nil {
		return err
	}

	for i, b := range Bands {
		cell, err := excelize.CoordinatesToCellName(col, legendRow+1+i)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, b.Caption()); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.legend[b]); err != nil {
			return err
		}
	}
	return nil
}

func stringsToValues(ss []string) []interface{} {
	vals := make([]interface{}, len(ss))
	for i, s := range ss {
		vals[i] = s
	}
	return vals
}
