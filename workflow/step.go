package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrStepPanicked indicates a step panicked rather than returning an error.
	ErrStepPanicked = errors.New("step panicked")

	// ErrNilStep occurs when a factory hands out a nil step.
	ErrNilStep = errors.New("nil step")
)

// StepExecutionError is returned by steps that fail.
type StepExecutionError struct {
	// Step is the kind name of the failed step. It may be empty when
	// the step itself builds the error.
	Step string

	// Message describes the failure.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// NewStepExecutionError creates a new failure for step with message msg.
func NewStepExecutionError(step, msg string) *StepExecutionError {
	return &StepExecutionError{Step: step, Message: msg}
}

// WrapStepExecutionError creates a new failure for step caused by err.
// It returns a nil error if err is nil so it can be returned directly
// from a step's Execute method.
func WrapStepExecutionError(step string, err error) error {
	if err == nil {
		return nil
	}
	return &StepExecutionError{Step: step, Err: err}
}

// Error returns the failure message.
func (e *StepExecutionError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *StepExecutionError) Unwrap() error {
	return e.Err
}

// PanicError converts a recovered panic value into a StepExecutionError.
func PanicError(step string, v interface{}) *StepExecutionError {
	if err, ok := v.(error); ok {
		return &StepExecutionError{
			Step: step,
			Err:  fmt.Errorf("%w: %w", ErrStepPanicked, err),
		}
	}
	return &StepExecutionError{
		Step: step,
		Err:  fmt.Errorf("%w: %v", ErrStepPanicked, v),
	}
}
