package report

import "fmt"

// Report build steps named in Error.
const (
	StepLayout = "layout"
	StepStyle  = "style"
	StepWrite  = "write"
)

// Error represents a failure while building or saving a report.
type Error struct {
	Path string
	Step string // "layout", "style", "write"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("report error for %q (%s): %v", e.Path, e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
