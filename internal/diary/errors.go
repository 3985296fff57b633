// Package diary holds the in-memory form state: the ordered entries table,
// the project selection with its derived names, the checklist, notes and
// sign-off.
package diary

import (
	"errors"
	"fmt"
)

var (
	ErrRequiredField = errors.New("required field missing")
	ErrInvalidStatus = errors.New("invalid verification status")
	ErrUnknownOption = errors.New("value is not one of the allowed options")
	ErrOutOfRange    = errors.New("row position out of range")
	ErrReadOnlyField = errors.New("field is derived and cannot be edited")
)

// RowError reports which row and column rejected an edit.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e == nil {
		return ""
	}
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row+1, e.Err)
	}
	return fmt.Sprintf("row %d %s: %v", e.Row+1, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
