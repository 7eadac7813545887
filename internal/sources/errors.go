package sources

import (
	"errors"
	"fmt"
)

var (
	// ErrSource is the base error type for source construction errors.
	ErrSource = errors.New("source error")

	// ErrEmptyParticle indicates a source without a particle definition.
	ErrEmptyParticle = fmt.Errorf("%w: empty particle", ErrSource)

	// ErrNegativeCount indicates a negative primary count.
	ErrNegativeCount = fmt.Errorf("%w: negative primary count", ErrSource)

	// ErrNegativeActivity indicates a negative activity.
	ErrNegativeActivity = fmt.Errorf("%w: negative activity", ErrSource)

	// ErrNegativeEnergy indicates a negative energy or energy sigma.
	ErrNegativeEnergy = fmt.Errorf("%w: negative energy", ErrSource)
)
