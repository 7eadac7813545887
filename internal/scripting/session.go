// Package scripting is the host-environment surface of gatebind: it
// evaluates a user script against a binding module and constructs the
// actor and source instances the script declares.
//
// A Session tracks one evaluation through a complete lifecycle with state
// tracking and per-session log history.
package scripting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gatesim/gatebind/internal/bindings"
	"github.com/gatesim/gatebind/internal/scripting/evaluators"
	"github.com/gatesim/gatebind/internal/scripting/finitestate"
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
	"github.com/robbyt/go-polyscript/platform/constants"
	"github.com/robbyt/go-polyscript/platform/data"
)

// Session represents a complete lifecycle of one scripted binding run.
type Session struct {
	// ID is the unique identifier for this session
	ID uuid.UUID

	// CreatedAt is when the session was created
	CreatedAt time.Time

	module    *bindings.Module
	evaluator evaluators.Evaluator

	// State management
	fsm finitestate.Machine

	// Logging with history tracking
	logger       *slog.Logger
	logCollector *loglater.LogCollector

	handles []*bindings.Handle
}

// New creates a session for evaluating a script against the given module.
func New(
	module *bindings.Module,
	evaluator evaluators.Evaluator,
	handler slog.Handler,
) (*Session, error) {
	if module == nil {
		return nil, ErrNilModule
	}
	if evaluator == nil {
		return nil, ErrNilEvaluator
	}

	sessionID := uuid.Must(uuid.NewV6())

	sm, err := finitestate.New(handler)
	if err != nil {
		return nil, fmt.Errorf("%s failed to create state machine: %w", sessionID, err)
	}

	// Set up logger with the loglater history collector and session metadata
	logCollector := loglater.NewLogCollector(handler)
	logger := slog.New(logCollector).With(
		"session_id", sessionID,
		"module", module.Name(),
		"evaluator", evaluator.Type().String(),
	)

	s := &Session{
		ID:           sessionID,
		CreatedAt:    time.Now(),
		module:       module,
		evaluator:    evaluator,
		fsm:          sm,
		logger:       logger,
		logCollector: logCollector,
	}

	s.logger.Info("Session created")
	return s, nil
}

// GetState returns the current state of the session.
func (s *Session) GetState() string {
	return s.fsm.GetState()
}

// Validate compiles the script and moves the session to validated, or to
// invalid when compilation fails.
func (s *Session) Validate() error {
	if err := s.fsm.Transition(finitestate.StateValidating); err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}

	if err := s.evaluator.Validate(); err != nil {
		s.logger.Error("Script validation failed", "error", err)
		if stateErr := s.fsm.Transition(finitestate.StateInvalid); stateErr != nil {
			return errors.Join(err, stateErr)
		}
		return err
	}

	if err := s.fsm.Transition(finitestate.StateValidated); err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}

	s.logger.Info("Script validated")
	return nil
}

// Execute evaluates the script and constructs every declared instance
// through the module table. On success the session holds the constructed
// handles and reaches the completed state.
func (s *Session) Execute(ctx context.Context) ([]*bindings.Handle, error) {
	if s.GetState() != finitestate.StateValidated {
		return nil, fmt.Errorf("session %s: %w (state %s)", s.ID, ErrNotValidated, s.GetState())
	}

	if err := s.fsm.Transition(finitestate.StateExecuting); err != nil {
		return nil, fmt.Errorf("session %s: %w", s.ID, err)
	}

	handles, err := s.executeScript(ctx)
	if err != nil {
		s.logger.Error("Session execution failed", "error", err)
		if stateErr := s.fsm.Transition(finitestate.StateFailed); stateErr != nil {
			return nil, errors.Join(err, stateErr)
		}
		return nil, err
	}

	if err := s.fsm.Transition(finitestate.StateCompleted); err != nil {
		return nil, fmt.Errorf("session %s: %w", s.ID, err)
	}

	s.handles = handles
	s.logger.Info("Session completed", "instances", len(handles))
	return handles, nil
}

// executeScript runs the compiled script and constructs the declared
// instances. Construction errors from native constructors pass through.
func (s *Session) executeScript(ctx context.Context) ([]*bindings.Handle, error) {
	compiled, err := s.evaluator.GetCompiledEvaluator()
	if err != nil {
		return nil, fmt.Errorf("failed to get compiled evaluator: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.evaluator.GetTimeout())
	defer cancel()

	// Expose the module surface to the script under the eval data namespace.
	// Type names go in as []any: the Starlark engine rejects []string values.
	typeNames := s.module.Types()
	types := make([]any, 0, len(typeNames))
	for _, name := range typeNames {
		types = append(types, name)
	}
	scriptData := map[string]any{
		"module": s.module.Name(),
		"types":  types,
	}

	contextProvider := data.NewContextProvider(constants.EvalData)
	enrichedCtx, err := contextProvider.AddDataToContext(timeoutCtx, scriptData)
	if err != nil {
		return nil, fmt.Errorf("failed to add eval data: %w", err)
	}

	start := time.Now()
	result, err := compiled.Eval(enrichedCtx)
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("script evaluation failed after %s: %w", duration, err)
	}
	s.logger.Debug("Script evaluated", "duration", duration)

	decls, err := parseDeclarations(result.Interface())
	if err != nil {
		return nil, err
	}

	handles := make([]*bindings.Handle, 0, len(decls))
	for _, decl := range decls {
		handle, err := s.module.Construct(decl.Type, decl.Name, decl.Config)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Constructed instance",
			"type", decl.Type,
			"name", decl.Name,
			"handle", handle.ID(),
		)
		handles = append(handles, handle)
	}

	return handles, nil
}

// Handles returns the handles constructed by a completed session.
func (s *Session) Handles() []*bindings.Handle {
	return s.handles
}

// PlaybackLogs plays back the session logs to the given handler.
func (s *Session) PlaybackLogs(handler slog.Handler) error {
	return s.logCollector.PlayLogs(handler)
}

// GetTotalDuration returns the total duration of the session so far.
func (s *Session) GetTotalDuration() time.Duration {
	return time.Since(s.CreatedAt)
}
