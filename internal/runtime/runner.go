// Package runtime runs a binding module from a config file under
// go-supervisor: it boots the standard module table, constructs every
// declared instance, and rebuilds the world on reload.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gatesim/gatebind/internal/bindings"
	"github.com/gatesim/gatebind/internal/config"
	"github.com/gatesim/gatebind/internal/runtime/finitestate"
	"github.com/gatesim/gatebind/internal/scripting"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable   = (*Runner)(nil)
	_ supervisor.Reloadable = (*Runner)(nil)
	_ supervisor.Stateable  = (*Runner)(nil)
)

// World is one fully constructed binding run: the module table plus the
// handles of every instance the config declared.
type World struct {
	Config  *config.Config
	Module  *bindings.Module
	Handles []*bindings.Handle
}

type Runner struct {
	configPath string
	world      atomic.Pointer[World]

	logger *slog.Logger
	fsm    finitestate.Machine

	runCtx    context.Context
	runCancel context.CancelFunc
	parentCtx context.Context
}

// NewRunner creates a Runner that boots from the given config file.
func NewRunner(configPath string, opts ...Option) (*Runner, error) {
	if configPath == "" {
		return nil, errors.New("config path is required")
	}

	runner := &Runner{
		configPath: configPath,
		logger:     slog.Default().WithGroup("runtime.Runner"),
		parentCtx:  context.Background(),
	}

	for _, opt := range opts {
		opt(runner)
	}

	fsmLogger := runner.logger.WithGroup("fsm")
	machine, err := finitestate.New(fsmLogger.Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	runner.fsm = machine

	return runner, nil
}

// String implements the supervisor.Runnable interface
func (r *Runner) String() string {
	return "runtime.Runner"
}

// Run implements the supervisor.Runnable interface
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("Starting Runner")

	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("failed to transition to booting state: %w", err)
	}

	r.runCtx, r.runCancel = context.WithCancel(ctx)
	defer r.runCancel()

	if err := r.boot(r.runCtx); err != nil {
		if stateErr := r.fsm.Transition(finitestate.StatusError); stateErr != nil {
			r.logger.Error("Failed to transition to error state", "error", stateErr)
		}
		return fmt.Errorf("failed to boot binding run: %w", err)
	}

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		return fmt.Errorf("failed to transition to running state: %w", err)
	}

	select {
	case <-r.parentCtx.Done():
		r.logger.Debug("Parent context canceled")
	case <-r.runCtx.Done():
		r.logger.Debug("Run context canceled")
	}

	r.logger.Info("Runner shutting down")

	if r.fsm.GetState() != finitestate.StatusStopping {
		if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
			r.logger.Error("Failed to transition to stopping state", "error", err)
		}
	}

	r.shutdownWorld()

	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		return fmt.Errorf("failed to transition to stopped state: %w", err)
	}

	return nil
}

// boot loads the config and constructs the initial world
func (r *Runner) boot(ctx context.Context) error {
	world, err := r.buildWorld(ctx)
	if err != nil {
		return err
	}

	r.world.Store(world)
	r.logger.Info("Binding run booted",
		"types", len(world.Module.Types()),
		"instances", len(world.Handles),
	)
	return nil
}

// buildWorld loads the config from disk and constructs every declared
// instance: static [[actors]] declarations first, then the script block.
func (r *Runner) buildWorld(ctx context.Context) (*World, error) {
	cfg, err := config.NewConfig(r.configPath)
	if err != nil {
		return nil, err
	}

	module, err := bindings.NewStandardModule()
	if err != nil {
		return nil, fmt.Errorf("failed to build module table: %w", err)
	}

	world := &World{Config: cfg, Module: module}

	for _, decl := range cfg.Actors {
		handle, err := module.Construct(decl.Type, decl.Name, decl.Record())
		if err != nil {
			return nil, fmt.Errorf("failed to construct actor '%s': %w", decl.Name, err)
		}
		r.logger.Debug("Constructed instance",
			"type", decl.Type,
			"name", decl.Name,
			"handle", handle.ID(),
		)
		world.Handles = append(world.Handles, handle)
	}

	if cfg.Script.Enabled() {
		handles, err := r.runScript(ctx, cfg, module)
		if err != nil {
			return nil, err
		}
		world.Handles = append(world.Handles, handles...)
	}

	return world, nil
}

// runScript evaluates the config's script block against the module.
func (r *Runner) runScript(
	ctx context.Context,
	cfg *config.Config,
	module *bindings.Module,
) ([]*bindings.Handle, error) {
	eval, err := cfg.Script.ToEvaluator()
	if err != nil {
		return nil, err
	}

	session, err := scripting.New(module, eval, r.logger.Handler())
	if err != nil {
		return nil, err
	}

	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("script validation failed: %w", err)
	}

	handles, err := session.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("script execution failed: %w", err)
	}

	r.logger.Debug("Script session completed",
		"session_id", session.ID,
		"instances", len(handles),
	)
	return handles, nil
}

// shutdownWorld closes owned handles and drops the world.
func (r *Runner) shutdownWorld() {
	world := r.world.Swap(nil)
	if world == nil {
		return
	}
	for _, handle := range world.Handles {
		if err := handle.Close(); err != nil {
			r.logger.Error("Failed to close handle",
				"handle", handle.ID(),
				"error", err,
			)
		}
	}
}

// GetWorld returns the current world, or nil before boot completes.
func (r *Runner) GetWorld() *World {
	return r.world.Load()
}

// Stop implements the supervisor.Runnable interface
func (r *Runner) Stop() {
	r.logger.Debug("Stopping Runner")
	if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
		r.logger.Error("Failed to transition to stopping state", "error", err)
	}
	if r.runCancel != nil {
		r.runCancel()
	}
}

// Reload implements the supervisor.Reloadable interface. The config is
// re-read from disk and the whole world is rebuilt; the previous world
// stays active if the rebuild fails.
func (r *Runner) Reload() {
	r.logger.Debug("Starting Reload...")

	if !r.fsm.TransitionBool(finitestate.StatusReloading) {
		r.logger.Warn("Cannot reload in current state", "state", r.fsm.GetState())
		return
	}

	ctx := r.runCtx
	if ctx == nil {
		ctx = r.parentCtx
	}

	world, err := r.buildWorld(ctx)
	if err != nil {
		r.logger.Error("Failed to rebuild binding run, keeping previous", "error", err)
		if stateErr := r.fsm.Transition(finitestate.StatusRunning); stateErr != nil {
			r.logger.Error("Failed to transition back to running state", "error", stateErr)
		}
		return
	}

	old := r.world.Swap(world)
	if old != nil {
		for _, handle := range old.Handles {
			if err := handle.Close(); err != nil {
				r.logger.Error("Failed to close handle", "handle", handle.ID(), "error", err)
			}
		}
	}

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		r.logger.Error("Failed to transition to running state", "error", err)
		return
	}

	r.logger.Info("Binding run reloaded",
		"types", len(world.Module.Types()),
		"instances", len(world.Handles),
	)
}
