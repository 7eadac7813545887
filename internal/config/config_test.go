package config

import (
	"strings"
	"testing"

	"github.com/gatesim/gatebind/internal/config/errz"
	"github.com/gatesim/gatebind/internal/scripting/evaluators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
version = "v1"

[logging]
format = "text"
level = "debug"

[[actors]]
type = "GateChemistryActor"
name = "chem"
[actors.config]
timestep_model = "IRT"
end_time = "1us"

[[actors]]
type = "GateGenericSource"
name = "beam"
[actors.config]
particle = "proton"
n = 50

[script]
evaluator = "risor"
code = "[]"
timeout = "30s"
`

func TestNewConfigFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		cfg, err := NewConfigFromBytes([]byte(validTOML))
		require.NoError(t, err)

		assert.Equal(t, "v1", cfg.Version)
		assert.Equal(t, LogFormatText, cfg.Logging.Format)
		assert.Equal(t, LogLevelDebug, cfg.Logging.Level)

		require.Len(t, cfg.Actors, 2)
		assert.Equal(t, "GateChemistryActor", cfg.Actors[0].Type)
		assert.Equal(t, "chem", cfg.Actors[0].Name)
		model, err := cfg.Actors[0].Record().GetString("timestep_model")
		require.NoError(t, err)
		assert.Equal(t, "IRT", model)

		require.True(t, cfg.Script.Enabled())
		assert.Equal(t, "risor", cfg.Script.Evaluator)
		assert.Equal(t, "30s", cfg.Script.Timeout.String())
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := NewConfigFromBytes(nil)
		assert.ErrorIs(t, err, errz.ErrFailedToLoadConfig)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := NewConfigFromBytes([]byte(`version = [unclosed`))
		assert.ErrorIs(t, err, errz.ErrFailedToLoadConfig)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := NewConfigFromBytes([]byte(`
version = "v99"
[[actors]]
type = "GateChemistryActor"
name = "chem"
`))
		assert.ErrorIs(t, err, errz.ErrUnsupportedConfigVer)
	})

	t.Run("version defaults to latest", func(t *testing.T) {
		cfg, err := NewConfigFromBytes([]byte(`
[[actors]]
type = "GateChemistryActor"
name = "chem"
`))
		require.NoError(t, err)
		assert.Equal(t, "v1", cfg.Version)
	})

	t.Run("no actors and no script", func(t *testing.T) {
		_, err := NewConfigFromBytes([]byte(`version = "v1"`))
		assert.ErrorIs(t, err, errz.ErrMissingRequiredField)
	})
}

func TestNewConfigFromReader(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfigFromReader(strings.NewReader(validTOML))
	require.NoError(t, err)
	assert.Len(t, cfg.Actors, 2)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("duplicate actor names", func(t *testing.T) {
		cfg := &Config{
			Version: "v1",
			Actors: ActorDefs{
				{Type: "GateChemistryActor", Name: "x"},
				{Type: "GateGenericSource", Name: "x"},
			},
		}
		err := cfg.Validate()
		assert.ErrorIs(t, err, errz.ErrDuplicateName)
	})

	t.Run("empty actor name", func(t *testing.T) {
		cfg := &Config{
			Version: "v1",
			Actors:  ActorDefs{{Type: "GateChemistryActor"}},
		}
		err := cfg.Validate()
		assert.ErrorIs(t, err, errz.ErrEmptyName)
	})

	t.Run("unknown actor type", func(t *testing.T) {
		cfg := &Config{
			Version: "v1",
			Actors:  ActorDefs{{Type: "GateWarpDriveActor", Name: "w"}},
		}
		err := cfg.Validate()
		assert.ErrorIs(t, err, errz.ErrInvalidActorType)
	})

	t.Run("abstract type is not declarable", func(t *testing.T) {
		cfg := &Config{
			Version: "v1",
			Actors:  ActorDefs{{Type: "GateVActor", Name: "base"}},
		}
		err := cfg.Validate()
		assert.ErrorIs(t, err, errz.ErrInvalidActorType)
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := &Config{
			Version: "v1",
			Logging: LoggingConfig{Format: "xml"},
			Actors:  ActorDefs{{Type: "GateChemistryActor", Name: "c"}},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log format")
	})

	t.Run("script with syntax error", func(t *testing.T) {
		cfg := &Config{
			Version: "v1",
			Script:  &ScriptConfig{Evaluator: "risor", Code: "func broken( {"},
		}
		err := cfg.Validate()
		require.Error(t, err)
	})

	t.Run("script missing evaluator", func(t *testing.T) {
		cfg := &Config{
			Version: "v1",
			Script:  &ScriptConfig{Code: "[]"},
		}
		err := cfg.Validate()
		assert.ErrorIs(t, err, errz.ErrMissingEvaluator)
	})
}

func TestScriptConfigToEvaluator(t *testing.T) {
	t.Parallel()

	t.Run("risor", func(t *testing.T) {
		sc := &ScriptConfig{Evaluator: "risor", Code: "[]"}
		eval, err := sc.ToEvaluator()
		require.NoError(t, err)
		assert.Equal(t, evaluators.EvaluatorTypeRisor, eval.Type())
	})

	t.Run("starlark", func(t *testing.T) {
		sc := &ScriptConfig{Evaluator: "starlark", Code: "_ = []"}
		eval, err := sc.ToEvaluator()
		require.NoError(t, err)
		assert.Equal(t, evaluators.EvaluatorTypeStarlark, eval.Type())
	})

	t.Run("unknown engine", func(t *testing.T) {
		sc := &ScriptConfig{Evaluator: "lua", Code: "[]"}
		_, err := sc.ToEvaluator()
		assert.ErrorIs(t, err, errz.ErrInvalidEvaluator)
	})

	t.Run("disabled block", func(t *testing.T) {
		var sc *ScriptConfig
		assert.False(t, sc.Enabled())
	})
}

func TestConfigString(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfigFromBytes([]byte(validTOML))
	require.NoError(t, err)

	out := cfg.String()
	assert.Contains(t, out, "Gatebind Config")
	assert.Contains(t, out, "chem")
	assert.Contains(t, out, "GateGenericSource")
}

func TestDuration(t *testing.T) {
	t.Parallel()

	d, err := ParseDuration("1500ms")
	require.NoError(t, err)
	assert.Equal(t, "1.5s", d.String())

	var u Duration
	require.NoError(t, u.UnmarshalText([]byte("2us")))
	assert.Equal(t, "2µs", u.String())

	assert.Error(t, u.UnmarshalText([]byte("not-a-duration")))

	text, err := FromDuration(d.AsDuration()).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(text))
}
