// Package record provides the open, string-keyed configuration mapping that
// is passed across the binding boundary when constructing native types.
//
// A Record is owned by the caller and treated as read-only by the binding
// layer; constructors that need to retain values must copy them.
package record

import (
	"maps"
	"slices"
	"time"
)

// Record is an open mapping from string keys to heterogeneous values.
// Required/optional key validation belongs to the consuming constructor,
// not to this type.
type Record map[string]any

// Clone returns a shallow copy of the record. A nil record clones to nil.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Keys returns the record's keys in sorted order.
func (r Record) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// Has reports whether the key is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// GetString returns the string value for key.
func (r Record) GetString(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", NewKeyNotFoundError(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", NewWrongTypeError(key, "string", v)
	}
	return s, nil
}

// GetBool returns the boolean value for key.
func (r Record) GetBool(key string) (bool, error) {
	v, ok := r[key]
	if !ok {
		return false, NewKeyNotFoundError(key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, NewWrongTypeError(key, "bool", v)
	}
	return b, nil
}

// GetFloat returns the numeric value for key as a float64. TOML and script
// engines may deliver numbers as int, int64, or float64.
func (r Record) GetFloat(key string) (float64, error) {
	v, ok := r[key]
	if !ok {
		return 0, NewKeyNotFoundError(key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, NewWrongTypeError(key, "number", v)
	}
}

// GetInt returns the integer value for key.
func (r Record) GetInt(key string) (int64, error) {
	v, ok := r[key]
	if !ok {
		return 0, NewKeyNotFoundError(key)
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, NewWrongTypeError(key, "integer", v)
	}
}

// GetDuration returns the duration value for key, parsed from a string in
// time.ParseDuration syntax ("10ms", "1us").
func (r Record) GetDuration(key string) (time.Duration, error) {
	s, err := r.GetString(key)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, NewWrongTypeError(key, "duration string", s)
	}
	return d, nil
}

// GetStringSlice returns the value for key as a []string. Script engines
// deliver lists as []any, so both representations are accepted.
func (r Record) GetStringSlice(key string) ([]string, error) {
	v, ok := r[key]
	if !ok {
		return nil, NewKeyNotFoundError(key)
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, NewWrongTypeError(key, "list of strings", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, NewWrongTypeError(key, "list of strings", v)
	}
}

// GetRecordSlice returns the value for key as a list of nested records.
func (r Record) GetRecordSlice(key string) ([]Record, error) {
	v, ok := r[key]
	if !ok {
		return nil, NewKeyNotFoundError(key)
	}
	switch list := v.(type) {
	case []Record:
		return list, nil
	case []map[string]any:
		out := make([]Record, 0, len(list))
		for _, item := range list {
			out = append(out, Record(item))
		}
		return out, nil
	case []any:
		out := make([]Record, 0, len(list))
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, NewWrongTypeError(key, "list of tables", item)
			}
			out = append(out, Record(m))
		}
		return out, nil
	default:
		return nil, NewWrongTypeError(key, "list of tables", v)
	}
}
