// Package domain defines the slicer definition model, the schema registry,
// request types, and the compiled schema values.
package domain

import "fmt"

// UnknownNameError indicates that a requested metric, dimension, filter
// target, reference target, or rollup target does not exist in the registry
// or the current selection.
type UnknownNameError struct {
	Message string
}

func (e *UnknownNameError) Error() string { return e.Message }

// NamespaceMismatchError indicates that a filter or reference crosses the
// metric/dimension boundary, or that a reference targets a dimension that is
// not a selected date dimension.
type NamespaceMismatchError struct {
	Message string
}

func (e *NamespaceMismatchError) Error() string { return e.Message }

// ErrUnknownName creates an UnknownNameError with a formatted message.
func ErrUnknownName(format string, args ...interface{}) *UnknownNameError {
	return &UnknownNameError{Message: fmt.Sprintf(format, args...)}
}

// ErrNamespaceMismatch creates a NamespaceMismatchError with a formatted message.
func ErrNamespaceMismatch(format string, args ...interface{}) *NamespaceMismatchError {
	return &NamespaceMismatchError{Message: fmt.Sprintf(format, args...)}
}
