package bindings

import "errors"

// Sentinel errors for registration and construction at the binding boundary.
var (
	// ErrBaseNotRegistered is returned when a descriptor declares a base
	// capability that has not been registered in the same module yet.
	// Registration order is a startup contract; this is unrecoverable.
	ErrBaseNotRegistered = errors.New("base capability not registered")

	// ErrDuplicateType is returned when a type name is registered twice in
	// one module. Re-registration never overwrites the prior entry.
	ErrDuplicateType = errors.New("type already registered")

	// ErrEmptyTypeName is returned for a descriptor without a name.
	ErrEmptyTypeName = errors.New("empty type name")

	// ErrNilConstructor is returned for a non-abstract descriptor without a
	// constructor.
	ErrNilConstructor = errors.New("nil constructor")

	// ErrTypeNotRegistered is returned when constructing or inspecting a
	// type name absent from the module table.
	ErrTypeNotRegistered = errors.New("type not registered")

	// ErrAbstractType is returned when constructing a capability that was
	// registered as abstract.
	ErrAbstractType = errors.New("abstract type is not constructible")

	// ErrInvalidConfigType is returned when the construction argument is not
	// a configuration record.
	ErrInvalidConfigType = errors.New("invalid config type")
)
