package report

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
)

// thinBorder is a uniform thin border on all four sides.
var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// styleSet holds the style IDs registered in one workbook.
type styleSet struct {
	fill   map[Band]int
	legend map[Band]int
	header int
	numFmt map[string]int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	s := &styleSet{
		fill:   make(map[Band]int, len(Bands)),
		legend: make(map[Band]int, len(Bands)),
		numFmt: make(map[string]int),
	}

	for _, b := range Bands {
		fill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{b.Color()}}

		id, err := f.NewStyle(&excelize.Style{Fill: fill})
		if err != nil {
			return nil, err
		}
		s.fill[b] = id

		id, err = f.NewStyle(&excelize.Style{Fill: fill, Border: thinBorder})
		if err != nil {
			return nil, err
		}
		s.legend[b] = id
	}

	id, err := f.NewStyle(&excelize.Style{Border: thinBorder})
	if err != nil {
		return nil, err
	}
	s.header = id

	return s, nil
}

// numberFormat returns the style ID carrying the source number format of c,
// registering it on first use.
func (s *styleSet) numberFormat(f *excelize.File, c models.Cell) (int, error) {
	key := strconv.Itoa(c.NumFmt) + "|" + c.CustomNumFmt
	if id, ok := s.numFmt[key]; ok {
		return id, nil
	}

	st := &excelize.Style{NumFmt: c.NumFmt}
	if c.CustomNumFmt != "" {
		custom := c.CustomNumFmt
		st.CustomNumFmt = &custom
	}
	id, err := f.NewStyle(st)
	if err != nil {
		return 0, err
	}
	s.numFmt[key] = id
	return id, nil
}
