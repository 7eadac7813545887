package bindings

import (
	"fmt"

	"github.com/gatesim/gatebind/internal/actors/chemistry"
	"github.com/gatesim/gatebind/internal/sources"
)

// DefaultModuleName is the module the CLI registers standard types into.
const DefaultModuleName = "opengate_core"

// registrars run in declaration order; bases first.
var registrars = []func(*Module) error{
	RegisterVActor,
	RegisterVSource,
	RegisterChemistryActor,
	RegisterGenericSource,
}

// RegisterStandardTypes applies every standard registrar to the module in
// dependency order. Any failure is a startup error for the caller.
func RegisterStandardTypes(m *Module) error {
	for _, register := range registrars {
		if err := register(m); err != nil {
			return fmt.Errorf("registering standard types: %w", err)
		}
	}
	return nil
}

// NewStandardModule creates the default module with all standard types
// registered.
func NewStandardModule() (*Module, error) {
	m := NewModule(DefaultModuleName)
	if err := RegisterStandardTypes(m); err != nil {
		return nil, err
	}
	return m, nil
}

// StandardTypeNames lists the constructible standard type names. The config
// layer validates actor declarations against this list.
func StandardTypeNames() []string {
	return []string{
		chemistry.TypeName,
		sources.TypeName,
	}
}
