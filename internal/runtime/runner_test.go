package runtime

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gatesim/gatebind/internal/runtime/finitestate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runnerTOML = `
version = "v1"

[[actors]]
type = "GateChemistryActor"
name = "chem"
[actors.config]
timestep_model = "IRT"

[script]
evaluator = "risor"
code = '[{"type": "GateGenericSource", "name": "beam", "config": {"particle": "e-"}}]'
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gatebind.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRunner(t *testing.T) {
	t.Parallel()

	t.Run("requires config path", func(t *testing.T) {
		_, err := NewRunner("")
		assert.Error(t, err)
	})

	t.Run("initial state", func(t *testing.T) {
		runner, err := NewRunner(writeConfig(t, runnerTOML))
		require.NoError(t, err)
		assert.Equal(t, finitestate.StatusNew, runner.GetState())
		assert.Equal(t, "runtime.Runner", runner.String())
		assert.Nil(t, runner.GetWorld())
	})
}

func TestRunnerLifecycle(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, runnerTOML)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner, err := NewRunner(path, WithContext(ctx))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()

	require.Eventually(t, runner.IsRunning, 5*time.Second, 10*time.Millisecond)

	world := runner.GetWorld()
	require.NotNil(t, world)
	assert.Len(t, world.Handles, 2)
	assert.Equal(t, "GateChemistryActor", world.Handles[0].TypeName())
	assert.Equal(t, "GateGenericSource", world.Handles[1].TypeName())
	assert.True(t, world.Module.IsSubtype("GateChemistryActor", "GateVActor"))

	runner.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Equal(t, finitestate.StatusStopped, runner.GetState())
	assert.Nil(t, runner.GetWorld())
}

func TestRunnerBootFailure(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		runner, err := NewRunner(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)

		err = runner.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, finitestate.StatusError, runner.GetState())
	})

	t.Run("invalid declaration", func(t *testing.T) {
		path := writeConfig(t, `
version = "v1"
[[actors]]
type = "GateUnknownActor"
name = "x"
`)
		runner, err := NewRunner(path)
		require.NoError(t, err)

		err = runner.Run(context.Background())
		require.Error(t, err)
	})
}

func TestRunnerReload(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, runnerTOML)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner, err := NewRunner(path, WithContext(ctx))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()
	require.Eventually(t, runner.IsRunning, 5*time.Second, 10*time.Millisecond)

	t.Run("rebuilds on valid change", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`
version = "v1"
[[actors]]
type = "GateGenericSource"
name = "only"
`), 0o644))

		runner.Reload()

		world := runner.GetWorld()
		require.NotNil(t, world)
		assert.Len(t, world.Handles, 1)
		assert.Equal(t, "only", world.Config.Actors[0].Name)
		assert.True(t, runner.IsRunning())
	})

	t.Run("keeps previous world on bad config", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`bad = [toml`), 0o644))

		runner.Reload()

		world := runner.GetWorld()
		require.NotNil(t, world)
		assert.Len(t, world.Handles, 1)
		assert.True(t, runner.IsRunning())
	})

	runner.Stop()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
}
