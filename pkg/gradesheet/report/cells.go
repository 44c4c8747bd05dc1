package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/models"
)

// cellValue converts a pass-through cell back to a typed sheet value.
// Only numeric and boolean source cells are converted; text is written as-is.
// Returns nil for empty cells.
func cellValue(c models.Cell) interface{} {
	if c.Value == "" {
		return nil
	}
	switch c.Kind {
	case models.CellNumber:
		if i, err := strconv.ParseInt(c.Value, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	case models.CellBool:
		return c.Value == "1" || strings.EqualFold(c.Value, "true")
	}
	return c.Value
}
