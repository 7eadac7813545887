package bindings

import (
	"github.com/gatesim/gatebind/internal/actors/chemistry"
	"github.com/gatesim/gatebind/internal/config/record"
)

// RegisterChemistryActor registers the GateChemistryActor type: a subtype
// of GateVActor with one constructor taking a configuration record.
//
// Instances are natively managed, so the descriptor carries the NoDelete
// holder policy and constructed handles are non-owning. Registration fails
// if GateVActor is not already present in the module.
func RegisterChemistryActor(m *Module) error {
	return m.Register(&TypeDescriptor{
		Name:     chemistry.TypeName,
		Base:     VActorTypeName,
		NoDelete: true,
		New: func(name string, rec record.Record) (any, error) {
			return chemistry.New(name, rec)
		},
	})
}
