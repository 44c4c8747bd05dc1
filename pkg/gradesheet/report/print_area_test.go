package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
)

// printArea returns the print area range of sheet, without '$' signs.
func printArea(t *testing.T, f *excelize.File, sheet string) string {
	t.Helper()
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, printAreaName) && dn.Scope == sheet {
			ref := dn.RefersTo
			if idx := strings.LastIndex(ref, "!"); idx >= 0 {
				ref = ref[idx+1:]
			}
			return strings.ReplaceAll(ref, "$", "")
		}
	}
	return ""
}

func TestPrintAreaCoversLegend(t *testing.T) {
	r, err := Build(sampleDataset())
	require.NoError(t, err)
	defer r.Close()

	// 3 records end at row 4; legend ends at row 6 in column I.
	assert.Equal(t, "A1:I6", printArea(t, r.File, DefaultSheetName))
}

func TestPrintAreaCoversLongData(t *testing.T) {
	ds := &models.Dataset{}
	for i := 0; i < 10; i++ {
		ds.Records = append(ds.Records, models.StudentRecord{Name: "s", Math: float64(i * 10)})
	}

	r, err := Build(ds)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, "A1:I11", printArea(t, r.File, DefaultSheetName))
}
