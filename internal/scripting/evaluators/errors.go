package evaluators

import (
	"errors"
	"fmt"
)

var (
	// ErrEvaluator is the base error type for evaluator package errors.
	ErrEvaluator = errors.New("evaluator error")

	// ErrInvalidEvaluatorType indicates an invalid evaluator type was specified.
	ErrInvalidEvaluatorType = fmt.Errorf("%w: invalid evaluator type", ErrEvaluator)

	// Common validation errors
	ErrMissingCodeAndURI = fmt.Errorf("%w: either code or uri is required", ErrEvaluator)
	ErrBothCodeAndURI    = fmt.Errorf("%w: code and uri are mutually exclusive", ErrEvaluator)
	ErrNegativeTimeout   = fmt.Errorf("%w: negative timeout", ErrEvaluator)

	// Compilation errors
	ErrLoaderCreation    = fmt.Errorf("%w: failed to create script loader", ErrEvaluator)
	ErrCompilationFailed = fmt.Errorf("%w: script compilation failed", ErrEvaluator)
)

// NewInvalidEvaluatorTypeError returns a new error for an invalid evaluator type.
func NewInvalidEvaluatorTypeError(value any) error {
	return fmt.Errorf("%w: %v", ErrInvalidEvaluatorType, value)
}
