package bindings

import (
	"errors"
	"fmt"

	"github.com/gatesim/gatebind/internal/config/record"
)

// Constructor builds a native instance from an instance name and an open
// configuration record. Errors from the native constructor are returned
// as-is; the module wraps them with construction context only.
type Constructor func(name string, rec record.Record) (any, error)

// TypeDescriptor declares one entry of a module's registration table.
type TypeDescriptor struct {
	// Name is the type name exposed to the host environment.
	Name string

	// Base names the capability this type is a subtype of. Empty for root
	// capabilities. The base must already be registered in the same module.
	Base string

	// Abstract marks a capability that exists only as a base for other
	// types and cannot be constructed.
	Abstract bool

	// NoDelete marks the non-owning holder policy: handles for instances of
	// this type never release the underlying native object. This is the
	// lifetime contract for natively-managed instances.
	NoDelete bool

	// New constructs an instance. Nil iff Abstract.
	New Constructor
}

// Validate checks the descriptor's internal consistency.
func (d *TypeDescriptor) Validate() error {
	var errs []error

	if d.Name == "" {
		errs = append(errs, ErrEmptyTypeName)
	}
	if !d.Abstract && d.New == nil {
		errs = append(errs, fmt.Errorf("%w: type %q", ErrNilConstructor, d.Name))
	}

	return errors.Join(errs...)
}

// String returns a short description of the descriptor.
func (d *TypeDescriptor) String() string {
	if d == nil {
		return "TypeDescriptor(nil)"
	}
	switch {
	case d.Abstract:
		return fmt.Sprintf("%s (abstract)", d.Name)
	case d.Base != "":
		return fmt.Sprintf("%s : %s", d.Name, d.Base)
	default:
		return d.Name
	}
}
