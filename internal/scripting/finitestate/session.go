// Session state machine implementation. Tracks the lifecycle of one
// scripted binding session from creation through execution.
package finitestate

import (
	"context"
	"log/slog"

	fsm "github.com/robbyt/go-fsm"
)

// Session state constants
const (
	StateCreated    = "created"    // Initial state when the session is created
	StateValidating = "validating" // Validation/compilation is in progress

	// Validation outcome states
	StateValidated = "validated" // Validation succeeded, ready for execution
	StateInvalid   = "invalid"   // Validation failed (terminal state)

	// Execution states
	StateExecuting = "executing" // Script is being evaluated and instances constructed
	StateCompleted = "completed" // Session fully completed (terminal state)
	StateFailed    = "failed"    // Execution failed (terminal state)

	// Error state (for all unrecoverable errors)
	StateError = "error" // Unrecoverable error occurred (terminal state)
)

// SessionTransitions defines the valid state transitions for a session.
var SessionTransitions = map[string][]string{
	StateCreated:    {StateValidating, StateError},
	StateValidating: {StateValidated, StateInvalid, StateError},
	StateValidated:  {StateExecuting, StateError},
	StateInvalid:    {}, // Invalid is a terminal state

	StateExecuting: {StateCompleted, StateFailed, StateError},
	StateCompleted: {}, // Completed is a terminal state
	StateFailed:    {}, // Failed is a terminal state

	StateError: {}, // Error is a terminal state for unrecoverable errors
}

// Machine defines the interface for the session state machine.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// TransitionBool attempts to transition the state machine to the specified state.
	TransitionBool(state string) bool

	// GetState returns the current state of the state machine.
	GetState() string

	// GetStateChan returns a channel that emits the state machine's state
	// whenever it changes. The channel is closed when the provided context
	// is canceled.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a new session state machine.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StateCreated, SessionTransitions)
}
