// Package report renders an enriched dataset as a styled xlsx workbook.
package report

// Band classifies a single mark for color coding.
// Its thresholds are independent of the grade thresholds.
type Band int

const (
	BandFail Band = iota
	BandAverage
	BandGood
	BandExcellent
)

// Bands lists every band in legend order.
var Bands = []Band{BandFail, BandAverage, BandGood, BandExcellent}

var bandInfo = [...]struct {
	name    string
	color   string
	caption string
}{
	BandFail:      {"Fail", "FF9999", "< 40 = Fail"},
	BandAverage:   {"Average", "FFFF99", "40–59 = Average"},
	BandGood:      {"Good", "99FF99", "60–79 = Good"},
	BandExcellent: {"Excellent", "99CCFF", "80+ = Excellent"},
}

// Classify returns the band for a mark. Out-of-range marks are not rejected.
func Classify(mark float64) Band {
	switch {
	case mark < 40:
		return BandFail
	case mark < 60:
		return BandAverage
	case mark < 80:
		return BandGood
	default:
		return BandExcellent
	}
}

func (b Band) valid() bool {
	return b >= 0 && int(b) < len(bandInfo)
}

func (b Band) String() string {
	if !b.valid() {
		return "Unknown"
	}
	return bandInfo[b].name
}

// Color returns the RGB fill color for the band, or "" for an unknown band.
func (b Band) Color() string {
	if !b.valid() {
		return ""
	}
	return bandInfo[b].color
}

// Caption returns the legend text for the band, or "" for an unknown band.
func (b Band) Caption() string {
	if !b.valid() {
		return ""
	}
	return bandInfo[b].caption
}

// MarshalText encodes the band by name.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
