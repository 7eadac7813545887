// Package evaluators provides the script evaluators available to the
// gatebind scripting front-end.
package evaluators

import (
	"fmt"
	"time"

	"github.com/robbyt/go-polyscript/platform"
)

type EvaluatorType int

const (
	DefaultEvalTimeout = 1 * time.Minute // Default timeout for script execution
)

// EvaluatorType enum values.
const (
	EvaluatorTypeUnspecified EvaluatorType = iota
	EvaluatorTypeRisor
	EvaluatorTypeStarlark
)

// Evaluator is the common interface for all script evaluators.
type Evaluator interface {
	Type() EvaluatorType
	Validate() error
	GetCompiledEvaluator() (platform.Evaluator, error)
	GetTimeout() time.Duration
}

// String returns a string representation of the EvaluatorType.
func (t EvaluatorType) String() string {
	switch t {
	case EvaluatorTypeRisor:
		return "Risor"
	case EvaluatorTypeStarlark:
		return "Starlark"
	case EvaluatorTypeUnspecified:
		return "Unspecified"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// New builds an evaluator of the named kind. kind matches the lowercase
// config spelling ("risor", "starlark").
func New(kind, code, uri string, timeout time.Duration) (Evaluator, error) {
	switch kind {
	case "risor":
		return &RisorEvaluator{Code: code, URI: uri, Timeout: timeout}, nil
	case "starlark":
		return &StarlarkEvaluator{Code: code, URI: uri, Timeout: timeout}, nil
	default:
		return nil, NewInvalidEvaluatorTypeError(kind)
	}
}
