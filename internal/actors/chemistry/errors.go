package chemistry

import (
	"errors"
	"fmt"
)

var (
	// ErrChemistry is the base error type for chemistry actor errors.
	ErrChemistry = errors.New("chemistry actor error")

	// ErrInvalidTimestepModel indicates an unknown timestep model was requested.
	ErrInvalidTimestepModel = fmt.Errorf("%w: invalid timestep model", ErrChemistry)

	// ErrInvalidEndTime indicates a zero or negative simulation end time.
	ErrInvalidEndTime = fmt.Errorf("%w: invalid end time", ErrChemistry)

	// ErrInvalidReaction indicates a malformed entry in the reaction table.
	ErrInvalidReaction = fmt.Errorf("%w: invalid reaction", ErrChemistry)
)

// NewInvalidTimestepModelError returns a new error for an unknown timestep model.
func NewInvalidTimestepModelError(value any) error {
	return fmt.Errorf("%w: %v", ErrInvalidTimestepModel, value)
}
