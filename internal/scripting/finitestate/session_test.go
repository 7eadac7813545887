package finitestate

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	machine, err := New(slog.Default().Handler())
	require.NoError(t, err)
	assert.Equal(t, StateCreated, machine.GetState())
}

func TestSessionTransitions(t *testing.T) {
	t.Parallel()

	t.Run("happy path", func(t *testing.T) {
		machine, err := New(slog.Default().Handler())
		require.NoError(t, err)

		for _, state := range []string{
			StateValidating,
			StateValidated,
			StateExecuting,
			StateCompleted,
		} {
			require.NoError(t, machine.Transition(state))
			assert.Equal(t, state, machine.GetState())
		}
	})

	t.Run("cannot skip validation", func(t *testing.T) {
		machine, err := New(slog.Default().Handler())
		require.NoError(t, err)

		assert.Error(t, machine.Transition(StateExecuting))
		assert.Equal(t, StateCreated, machine.GetState())
	})

	t.Run("terminal states have no exits", func(t *testing.T) {
		for _, terminal := range []string{
			StateInvalid,
			StateCompleted,
			StateFailed,
			StateError,
		} {
			assert.Empty(t, SessionTransitions[terminal], terminal)
		}
	})
}
