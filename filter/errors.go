package filter

import (
	"errors"
	"fmt"
)

// ErrNotBoolean is wrapped by an EvaluationError when an expression yields
// something other than true or false, such as a bare field reference.
var ErrNotBoolean = errors.New("expression did not evaluate to a boolean")

type (
	// CompilationError indicates a filter expression could not be compiled.
	// Column is zero based; -1 when the failure has no location.
	CompilationError struct {
		Expression string
		Reason     string
		Column     int
		Err        error
	}

	// EvaluationError indicates a compiled filter failed on one item, for
	// example by calling a string helper on a nil field.
	EvaluationError struct {
		Expression string
		Item       string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Column >= 0 {
		return fmt.Sprintf("filter %q: %s (column %d)", e.Expression, e.Reason, e.Column)
	}
	return fmt.Sprintf("filter %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("filter %q on %s: %v", e.Expression, e.Item, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
