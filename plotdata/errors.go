package plotdata

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformedRow matches (with errors.Is) every *RowError.
	ErrMalformedRow = errors.New("malformed row")
)

// RowError locates a problem in the input.
// Line is 1-based; it is the number of rows read so far
// for errors about the file as a whole (wrong row count).
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", ErrMalformedRow, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

func (e *RowError) Is(target error) bool { return target == ErrMalformedRow }

func rowErrorf(line int, format string, args ...interface{}) error {
	return &RowError{Line: line, Err: fmt.Errorf(format, args...)}
}
