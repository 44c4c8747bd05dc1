package models

// Grade is the letter rank derived from a student's percentage.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
)

// Rank orders grades from C (0) to A+ (3). Unknown grades rank -1.
func (g Grade) Rank() int {
	switch g {
	case GradeC:
		return 0
	case GradeB:
		return 1
	case GradeA:
		return 2
	case GradeAPlus:
		return 3
	default:
		return -1
	}
}

func (g Grade) String() string {
	return string(g)
}
