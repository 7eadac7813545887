package record

import (
	"errors"
	"fmt"
)

var (
	// ErrRecord is the base error type for record package errors.
	ErrRecord = errors.New("record error")

	// ErrKeyNotFound indicates a required key is absent from the record.
	ErrKeyNotFound = fmt.Errorf("%w: key not found", ErrRecord)

	// ErrWrongType indicates a key holds a value of an unexpected type.
	ErrWrongType = fmt.Errorf("%w: wrong type", ErrRecord)

	// ErrInvalidMergeMode indicates an invalid merge mode was specified.
	ErrInvalidMergeMode = fmt.Errorf("%w: invalid merge mode", ErrRecord)
)

// NewKeyNotFoundError returns a new error for a missing key.
func NewKeyNotFoundError(key string) error {
	return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// NewWrongTypeError returns a new error for a key whose value has the wrong type.
func NewWrongTypeError(key, want string, got any) error {
	return fmt.Errorf("%w: key %q wants %s, got %T", ErrWrongType, key, want, got)
}

// NewInvalidMergeModeError returns a new error for an invalid merge mode.
func NewInvalidMergeModeError(value any) error {
	return fmt.Errorf("%w: %v", ErrInvalidMergeMode, value)
}
