package models

// CellKind is the value type of a source cell.
type CellKind int

const (
	CellText CellKind = iota
	CellNumber
	CellBool
)

func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellBool:
		return "bool"
	default:
		return "text"
	}
}

// MarshalText encodes the kind by name.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Cell is a raw sheet value together with its source type.
type Cell struct {
	// Value is the unformatted cell content.
	Value string `json:"value"`
	// Kind is the source cell type.
	Kind CellKind `json:"kind"`
	// NumFmt is the built-in number format ID of a numeric cell (0 = General).
	NumFmt int `json:"-"`
	// CustomNumFmt is the custom number format of a numeric cell, if any.
	CustomNumFmt string `json:"-"`
}

// TextCell returns a text cell holding s.
func TextCell(s string) Cell {
	return Cell{Value: s}
}

// NumberCell returns a numeric cell holding s with the General format.
func NumberCell(s string) Cell {
	return Cell{Value: s, Kind: CellNumber}
}

// Formatted reports whether the cell carries a non-General number format.
func (c Cell) Formatted() bool {
	return c.Kind == CellNumber && (c.NumFmt != 0 || c.CustomNumFmt != "")
}
