package errz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{"ErrFailedToLoadConfig", ErrFailedToLoadConfig, "failed to load config"},
		{"ErrFailedToValidateConfig", ErrFailedToValidateConfig, "failed to validate config"},
		{"ErrUnsupportedConfigVer", ErrUnsupportedConfigVer, "unsupported config version"},
		{"ErrDuplicateName", ErrDuplicateName, "duplicate name"},
		{"ErrEmptyName", ErrEmptyName, "empty name"},
		{"ErrInvalidValue", ErrInvalidValue, "invalid value"},
		{"ErrMissingRequiredField", ErrMissingRequiredField, "missing required field"},
		{"ErrInvalidActorType", ErrInvalidActorType, "invalid actor type"},
		{"ErrInvalidEvaluator", ErrInvalidEvaluator, "invalid evaluator"},
		{"ErrTypeNotFound", ErrTypeNotFound, "type not found"},
		{"ErrMissingEvaluator", ErrMissingEvaluator, "missing evaluator"},
		{"ErrEmptyCode", ErrEmptyCode, "empty code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
		})
	}
}
