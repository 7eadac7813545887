package config

import (
	"errors"
	"fmt"

	"github.com/gatesim/gatebind/internal/config/errz"
	"github.com/gatesim/gatebind/internal/scripting/evaluators"
)

// ScriptConfig is the optional scripted declaration block. Instead of (or
// in addition to) static [[actors]] declarations, a script evaluated by
// the configured engine returns the declaration list.
type ScriptConfig struct {
	Evaluator string   `toml:"evaluator"`
	Code      string   `toml:"code"`
	URI       string   `toml:"uri"`
	Timeout   Duration `toml:"timeout"`
}

// Enabled reports whether a script block is present.
func (s *ScriptConfig) Enabled() bool {
	return s != nil && (s.Code != "" || s.URI != "")
}

// Validate checks the script block by building its evaluator.
func (s *ScriptConfig) Validate() error {
	if !s.Enabled() {
		return nil
	}

	eval, err := s.ToEvaluator()
	if err != nil {
		return err
	}
	return eval.Validate()
}

// ToEvaluator builds the script evaluator described by this block.
func (s *ScriptConfig) ToEvaluator() (evaluators.Evaluator, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("%w: script block has no code or uri", errz.ErrEmptyCode)
	}
	if s.Evaluator == "" {
		return nil, errz.ErrMissingEvaluator
	}

	eval, err := evaluators.New(s.Evaluator, s.Code, s.URI, s.Timeout.AsDuration())
	if err != nil {
		return nil, errors.Join(errz.ErrInvalidEvaluator, err)
	}
	return eval, nil
}
