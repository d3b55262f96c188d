package model

import (
	"errors"
	"fmt"
)

// DataError reports missing, empty or malformed input data.
type DataError struct {
	Op   string
	Path string
	Line int // 1-based line in the input file, 0 when not line-specific
	Err  error
}

func (e *DataError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("data error: %s %s:%d: %v", e.Op, e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("data error: %s %s: %v", e.Op, e.Path, e.Err)
	default:
		return fmt.Sprintf("data error: %s: %v", e.Op, e.Err)
	}
}

func (e *DataError) Unwrap() error { return e.Err }

// IOError reports an unreadable input or an unwritable output location.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsDataError reports whether err wraps a *DataError.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

// IsIOError reports whether err wraps an *IOError.
func IsIOError(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}
