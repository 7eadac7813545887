package config

import (
	"fmt"

	"github.com/gatesim/gatebind/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Gatebind Config (%s)", cfg.Version)))

	loggingTree := t.Child("Logging")
	loggingTree.Child(fmt.Sprintf("Format: %s", cfg.Logging.Format))
	loggingTree.Child(fmt.Sprintf("Level: %s", cfg.Logging.Level))

	actorsTree := t.Child("Actors")
	for _, a := range cfg.Actors {
		at := fancy.ActorTree(a.String())
		for _, key := range a.Record().Keys() {
			at.AddChild(fmt.Sprintf("%s: %v", key, a.Config[key]))
		}
		actorsTree.Child(at.Tree())
	}

	if cfg.Script.Enabled() {
		scriptTree := t.Child("Script")
		scriptTree.Child(fmt.Sprintf("Evaluator: %s", fancy.ScriptText(cfg.Script.Evaluator)))
		if cfg.Script.URI != "" {
			scriptTree.Child(fmt.Sprintf("URI: %s", fancy.PathText(cfg.Script.URI)))
		} else {
			scriptTree.Child(fmt.Sprintf("Code: %d bytes inline", len(cfg.Script.Code)))
		}
		if cfg.Script.Timeout != 0 {
			scriptTree.Child(fmt.Sprintf("Timeout: %s", cfg.Script.Timeout))
		}
	}

	return t.String()
}
