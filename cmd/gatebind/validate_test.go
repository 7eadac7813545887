package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gatesim/gatebind/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const validConfigContent = `
version = "v1"

[[actors]]
type = "GateChemistryActor"
name = "chem"
[actors.config]
timestep_model = "IRT"
`

const invalidConfigContent = `
version = "v1"

[[actors]]
type = "GateChemistryActor"
name = "dup"

[[actors]]
type = "GateGenericSource"
name = "dup"
`

// createTempConfigFile creates a temporary config file with the given content
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test_config.toml")
	err := os.WriteFile(configPath, []byte(content), 0o644)
	require.NoError(t, err)

	return configPath
}

func runValidate(t *testing.T, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "gatebind",
		Commands: []*cli.Command{validateCmd},
	}
	return app.Run(context.Background(), append([]string{"gatebind", "validate"}, args...))
}

func TestValidateCmd(t *testing.T) {
	t.Run("valid_config", func(t *testing.T) {
		configPath := createTempConfigFile(t, validConfigContent)
		assert.NoError(t, runValidate(t, "--config", configPath))
	})

	t.Run("valid_config_positional", func(t *testing.T) {
		configPath := createTempConfigFile(t, validConfigContent)
		assert.NoError(t, runValidate(t, configPath))
	})

	t.Run("valid_config_tree", func(t *testing.T) {
		configPath := createTempConfigFile(t, validConfigContent)
		assert.NoError(t, runValidate(t, "--tree", "--config", configPath))
	})

	t.Run("invalid_config", func(t *testing.T) {
		configPath := createTempConfigFile(t, invalidConfigContent)
		err := runValidate(t, "--config", configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate name")
	})

	t.Run("nonexistent_file", func(t *testing.T) {
		err := runValidate(t, "--config", "/path/that/does/not/exist.toml")
		assert.Error(t, err)
	})

	t.Run("no_path", func(t *testing.T) {
		err := runValidate(t)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file path required")
	})
}

func TestRenderConfigSummary(t *testing.T) {
	cfg, err := config.NewConfigFromBytes([]byte(validConfigContent))
	require.NoError(t, err)

	summary := renderConfigSummary("/tmp/x.toml", cfg)
	assert.Contains(t, summary, "Path: /tmp/x.toml")
	assert.Contains(t, summary, "Actors: 1")
	assert.Contains(t, summary, "Script: none")
}
