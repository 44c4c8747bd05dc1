package gradesheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/gradesheet-go/pkg/gradesheet/report"
)

// ErrInputNotFound indicates the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrInputRead indicates the input file exists but could not be read as a sheet.
var ErrInputRead = errors.New("failed to read input")

// ErrSchema indicates required columns are missing from the input sheet.
var ErrSchema = errors.New("missing required columns")

// SchemaError lists the required columns absent from the input header.
type SchemaError struct {
	Missing []string
	Found   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: [%s] (found columns: [%s])",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// Is makes errors.Is(err, ErrSchema) hold for any SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ReportError represents a failure while building or saving the output report.
type ReportError = report.Error

func inputNotFound(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
}

func inputRead(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInputRead, path, err)
}
