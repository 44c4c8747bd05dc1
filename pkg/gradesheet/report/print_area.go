package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// printAreaName is the reserved defined name Excel uses for a sheet's print area.
const printAreaName = "_xlnm.Print_Area"

// setPrintArea limits printing to the data block and the legend.
func setPrintArea(f *excelize.File, sheet string, lastCol, lastRow int) error {
	end, err := excelize.CoordinatesToCellName(lastCol, lastRow, true)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: fmt.Sprintf("'%s'!$A$1:%s", sheet, end),
		Scope:    sheet,
	})
}
