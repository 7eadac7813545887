package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("GATE_TEST_VAR", "chemistry")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "no variables",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "variable set",
			input: "actor-${GATE_TEST_VAR}",
			want:  "actor-chemistry",
		},
		{
			name:  "variable missing with default",
			input: "${GATE_TEST_MISSING:fallback}",
			want:  "fallback",
		},
		{
			name:  "variable missing with empty default",
			input: "x${GATE_TEST_MISSING:}y",
			want:  "xy",
		},
		{
			name:    "variable missing without default",
			input:   "${GATE_TEST_MISSING}",
			wantErr: true,
		},
		{
			name:  "set variable wins over default",
			input: "${GATE_TEST_VAR:ignored}",
			want:  "chemistry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandEnvVars(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpolateStruct(t *testing.T) {
	t.Setenv("GATE_TEST_URI", "file:///tmp/script.risor")

	type target struct {
		URI     string            `env_interpolation:"yes"`
		Code    string            `env_interpolation:"no"`
		Labels  map[string]string `env_interpolation:"yes"`
		Tags    []string          `env_interpolation:"yes"`
		private string
	}

	in := &target{
		URI:  "${GATE_TEST_URI}",
		Code: "${GATE_TEST_URI}",
		Labels: map[string]string{
			"uri": "${GATE_TEST_URI}",
		},
		Tags: []string{"${GATE_TEST_URI}"},
	}

	require.NoError(t, InterpolateStruct(in))
	assert.Equal(t, "file:///tmp/script.risor", in.URI)
	assert.Equal(t, "${GATE_TEST_URI}", in.Code, "untagged field must be untouched")
	assert.Equal(t, "file:///tmp/script.risor", in.Labels["uri"])
	assert.Equal(t, "file:///tmp/script.risor", in.Tags[0])
	assert.Empty(t, in.private)
}

func TestInterpolateStruct_Errors(t *testing.T) {
	type target struct {
		URI string `env_interpolation:"yes"`
	}

	t.Run("missing variable", func(t *testing.T) {
		in := &target{URI: "${GATE_TEST_DEFINITELY_MISSING}"}
		require.Error(t, InterpolateStruct(in))
	})

	t.Run("nil input", func(t *testing.T) {
		require.NoError(t, InterpolateStruct(nil))
	})

	t.Run("non-struct input", func(t *testing.T) {
		require.Error(t, InterpolateStruct("not a struct"))
	})

	t.Run("nil pointer", func(t *testing.T) {
		var in *target
		require.NoError(t, InterpolateStruct(in))
	})
}
