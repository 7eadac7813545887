// Package actors defines the base capability shared by every actor exposed
// through the binding layer.
//
// An actor is a pluggable observer attached to a simulation run. The engine
// that schedules and drives actors is external to this module; the binding
// layer only constructs actors and hands out references to them.
package actors

import "github.com/gatesim/gatebind/internal/config/record"

// VActor is the base capability all bound actor types implement. It is
// modeled as an interface rather than a concrete base type so the binding
// layer can dispatch over it without importing any engine hierarchy.
type VActor interface {
	// Name returns the user-assigned instance name.
	Name() string

	// TypeName returns the binding type name the instance was constructed as.
	TypeName() string

	// UserConfig returns the configuration record the actor was built from.
	// The returned record is the actor's own copy.
	UserConfig() record.Record
}
