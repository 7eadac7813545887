package record

import "maps"

// MergeMode represents the strategy for merging records from different sources.
type MergeMode int

// MergeMode enum values.
const (
	// MergeModeUnspecified is the default merge mode, where behavior is
	// defined by the consuming system.
	MergeModeUnspecified MergeMode = iota

	// MergeModeLast uses the last value found (highest priority source wins).
	MergeModeLast

	// MergeModeUnique keeps keys from the base record when the overlay
	// repeats them.
	MergeModeUnique
)

// Validate checks if the merge mode is a known value.
func (m MergeMode) Validate() error {
	switch m {
	case MergeModeUnspecified, MergeModeLast, MergeModeUnique:
		return nil
	default:
		return NewInvalidMergeModeError(m)
	}
}

// Merge combines base and overlay into a new record according to mode.
// Neither input is modified. MergeModeUnspecified behaves as MergeModeLast.
func Merge(base, overlay Record, mode MergeMode) (Record, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	out := make(Record, len(base)+len(overlay))
	maps.Copy(out, base)

	for k, v := range overlay {
		if mode == MergeModeUnique {
			if _, exists := out[k]; exists {
				continue
			}
		}
		out[k] = v
	}

	return out, nil
}
