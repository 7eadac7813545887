// Package sources defines the base capability for particle sources exposed
// through the binding layer, and the generic source implementation.
package sources

import "github.com/gatesim/gatebind/internal/config/record"

// VSource is the base capability all bound source types implement.
type VSource interface {
	// Name returns the user-assigned instance name.
	Name() string

	// TypeName returns the binding type name the instance was constructed as.
	TypeName() string

	// UserConfig returns the configuration record the source was built from.
	UserConfig() record.Record
}
