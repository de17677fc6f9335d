package gioplot

import (
	"errors"
	"fmt"
)

// ErrModelPoisoned is returned when a Model's chart was left in an unknown state by a panic
// during a write.
var ErrModelPoisoned = errors.New("chart model poisoned")

// BackendError is returned by a DrawingBackend that could not fulfill a primitive.
type BackendError struct {
	Reason string
	Err    error
}

// NewBackendError returns a backend error with a reason and an optional cause.
func NewBackendError(reason string, err error) *BackendError {
	return &BackendError{Reason: reason, Err: err}
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend error: %s: %v", e.Reason, e.Err)
	}
	return "backend error: " + e.Reason
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// PlotError is a failure of a chart's Plot, including a recovered panic.
type PlotError struct {
	Err error
}

func (e *PlotError) Error() string {
	return "plot: " + e.Err.Error()
}

func (e *PlotError) Unwrap() error {
	return e.Err
}
