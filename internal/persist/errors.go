package persist

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName        = errors.New("enter your name before saving")
	ErrIncompatibleShape  = errors.New("file is not a compatible saved report")
	ErrUnsupportedVersion = errors.New("saved report was written by a newer version")
	ErrInvalidFilename    = errors.New("invalid saved report filename")
)

// OpError names the operation and file that failed.
type OpError struct {
	Op   string
	File string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.File == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.File, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(op, file string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, File: file, Err: err}
}
