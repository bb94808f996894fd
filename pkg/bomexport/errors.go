package bomexport

import (
	"errors"
	"fmt"

	"github.com/ukaji3/bomexport-go/pkg/bomexport/output"
)

// ErrInputNotFound indicates the input workbook does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrNoSheets indicates the workbook has no worksheet to read.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrOutput indicates an import file could not be written.
var ErrOutput = output.ErrOutput

// OutputError reports a failed write of one import file.
type OutputError = output.OutputError

// InputError represents a failure to load the input workbook.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("load workbook %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError.
func NewInputError(path string, err error) *InputError {
	return &InputError{
		Path: path,
		Err:  err,
	}
}
