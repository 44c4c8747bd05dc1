package gradesheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/grading"
	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
)

// Load reads the header and data rows of one sheet of an xlsx workbook.
// An empty sheetName selects the first sheet.
func Load(path, sheetName string) (*models.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, inputNotFound(path, err)
		}
		return nil, inputRead(path, err)
	}
	if info.IsDir() {
		return nil, inputRead(path, errors.New("is a directory"))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, inputRead(path, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, inputRead(path, errors.New("workbook contains no sheets"))
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, inputRead(path, fmt.Errorf("sheet %q not found", sheetName))
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, inputRead(path, err)
	}

	t := &models.Table{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
	}
	if len(rows) == 0 {
		return t, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	t.Header = pad(rows[0], width)
	for i, raw := range rows[1:] {
		if isBlank(raw) {
			continue
		}
		row := models.Row{Num: i + 2, Cells: make([]models.Cell, width)}
		for col, v := range raw {
			row.Cells[col] = readCell(f, sheetName, col+1, row.Num, v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// readCell types a raw value by its source cell. Numbers keep their number
// format so dates and percentages survive the round trip.
func readCell(f *excelize.File, sheet string, col, row int, value string) models.Cell {
	c := models.TextCell(value)
	if value == "" {
		return c
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return c
	}
	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return c
	}

	switch typ {
	case excelize.CellTypeBool:
		c.Kind = models.CellBool
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if _, ok := grading.ParseMark(value); !ok {
			return c
		}
		c.Kind = models.CellNumber
		if id, err := f.GetCellStyle(sheet, name); err == nil && id != 0 {
			if st, err := f.GetStyle(id); err == nil {
				c.NumFmt = st.NumFmt
				if st.CustomNumFmt != nil {
					c.CustomNumFmt = *st.CustomNumFmt
				}
			}
		}
	}
	return c
}

// Validate checks that every required column is present in the header.
func Validate(t *models.Table) error {
	var missing []string
	for _, col := range models.RequiredColumns {
		if t.Index(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{
			Missing: missing,
			Found:   append([]string(nil), t.Header...),
		}
	}
	return nil
}

// Coerce converts a validated table into a dataset. Mark cells that are not
// numbers become 0 and are logged at debug level. Input columns named like a
// derived column are dropped since the report recomputes them.
func Coerce(t *models.Table, log zerolog.Logger) *models.Dataset {
	nameIdx := t.Index(models.ColName)
	markIdx := make([]int, len(models.SubjectColumns))
	for i, col := range models.SubjectColumns {
		markIdx[i] = t.Index(col)
	}

	var extraIdx []int
	ds := &models.Dataset{BookName: t.BookName}
	for i, h := range t.Header {
		if models.IsRequired(h) {
			continue
		}
		if models.IsDerived(h) {
			log.Debug().Str("column", h).Msg("dropping input column replaced by computed value")
			continue
		}
		extraIdx = append(extraIdx, i)
		ds.ExtraColumns = append(ds.ExtraColumns, h)
	}

	ds.Records = make([]models.StudentRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := models.StudentRecord{
			Row:  row.Num,
			Name: row.Value(nameIdx),
		}

		var marks [3]float64
		for j, idx := range markIdx {
			raw := row.Value(idx)
			v, ok := grading.ParseMark(raw)
			if !ok {
				ds.Coerced++
				log.Debug().
					Int("row", rec.Row).
					Str("column", models.SubjectColumns[j]).
					Str("value", raw).
					Msg("non-numeric mark treated as 0")
			}
			marks[j] = v
		}
		rec.Math, rec.Science, rec.English = marks[0], marks[1], marks[2]

		if len(extraIdx) > 0 {
			rec.Extra = make([]models.Cell, len(extraIdx))
			for j, idx := range extraIdx {
				if idx < len(row.Cells) {
					rec.Extra[j] = row.Cells[idx]
				}
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds
}

func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
