package record

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	t.Run("nil record", func(t *testing.T) {
		var r Record
		assert.Nil(t, r.Clone())
	})

	t.Run("copy is independent", func(t *testing.T) {
		r := Record{"a": 1}
		c := r.Clone()
		c["a"] = 2
		assert.Equal(t, 1, r["a"])
	})
}

func TestGetString(t *testing.T) {
	r := Record{"model": "IRT", "count": 3}

	s, err := r.GetString("model")
	require.NoError(t, err)
	assert.Equal(t, "IRT", s)

	_, err = r.GetString("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = r.GetString("count")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestGetFloat(t *testing.T) {
	r := Record{
		"f64": 1.5,
		"int": 2,
		"i64": int64(3),
		"str": "nope",
	}

	tests := []struct {
		key  string
		want float64
	}{
		{"f64", 1.5},
		{"int", 2},
		{"i64", 3},
	}
	for _, tt := range tests {
		got, err := r.GetFloat(tt.key)
		require.NoError(t, err, tt.key)
		assert.InEpsilon(t, tt.want, got, 1e-9)
	}

	_, err := r.GetFloat("str")
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = r.GetFloat("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestGetDuration(t *testing.T) {
	r := Record{"end_time": "1us", "bad": "not-a-duration", "num": 5}

	d, err := r.GetDuration("end_time")
	require.NoError(t, err)
	assert.Equal(t, time.Microsecond, d)

	_, err = r.GetDuration("bad")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = r.GetDuration("num")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestGetStringSlice(t *testing.T) {
	r := Record{
		"typed":   []string{"e-", "H2O"},
		"untyped": []any{"OH", "H3O+"},
		"mixed":   []any{"OH", 42},
	}

	got, err := r.GetStringSlice("typed")
	require.NoError(t, err)
	assert.Equal(t, []string{"e-", "H2O"}, got)

	got, err = r.GetStringSlice("untyped")
	require.NoError(t, err)
	assert.Equal(t, []string{"OH", "H3O+"}, got)

	_, err = r.GetStringSlice("mixed")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestGetRecordSlice(t *testing.T) {
	r := Record{
		"tables": []map[string]any{{"rate": 1.1}},
		"anys":   []any{map[string]any{"rate": 2.2}},
		"bad":    []any{"not a table"},
	}

	got, err := r.GetRecordSlice("tables")
	require.NoError(t, err)
	require.Len(t, got, 1)
	rate, err := got[0].GetFloat("rate")
	require.NoError(t, err)
	assert.InEpsilon(t, 1.1, rate, 1e-9)

	got, err = r.GetRecordSlice("anys")
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = r.GetRecordSlice("bad")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestMerge(t *testing.T) {
	base := Record{"a": 1, "b": 2}
	overlay := Record{"b": 3, "c": 4}

	t.Run("last wins", func(t *testing.T) {
		out, err := Merge(base, overlay, MergeModeLast)
		require.NoError(t, err)
		assert.Equal(t, Record{"a": 1, "b": 3, "c": 4}, out)
	})

	t.Run("unique keeps base", func(t *testing.T) {
		out, err := Merge(base, overlay, MergeModeUnique)
		require.NoError(t, err)
		assert.Equal(t, Record{"a": 1, "b": 2, "c": 4}, out)
	})

	t.Run("unspecified behaves as last", func(t *testing.T) {
		out, err := Merge(base, overlay, MergeModeUnspecified)
		require.NoError(t, err)
		assert.Equal(t, Record{"a": 1, "b": 3, "c": 4}, out)
	})

	t.Run("inputs untouched", func(t *testing.T) {
		_, err := Merge(base, overlay, MergeModeLast)
		require.NoError(t, err)
		assert.Equal(t, Record{"a": 1, "b": 2}, base)
		assert.Equal(t, Record{"b": 3, "c": 4}, overlay)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := Merge(base, overlay, MergeMode(99))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMergeMode))
	})
}
