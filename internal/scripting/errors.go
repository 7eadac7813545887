package scripting

import "errors"

var (
	// ErrNilModule is returned when a session is created without a module.
	ErrNilModule = errors.New("session requires a module")

	// ErrNilEvaluator is returned when a session is created without an evaluator.
	ErrNilEvaluator = errors.New("session requires an evaluator")

	// ErrNotValidated is returned when Execute runs before Validate succeeded.
	ErrNotValidated = errors.New("session has not been validated")

	// ErrInvalidResult is returned when the script result is not a list of
	// actor declarations.
	ErrInvalidResult = errors.New("invalid script result")
)
