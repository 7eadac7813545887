package bindings

import (
	"github.com/gatesim/gatebind/internal/config/record"
	"github.com/gatesim/gatebind/internal/sources"
)

// RegisterGenericSource registers the GateGenericSource type: a subtype of
// GateVSource constructible from a configuration record. Source instances
// are natively managed, so handles are non-owning.
func RegisterGenericSource(m *Module) error {
	return m.Register(&TypeDescriptor{
		Name:     sources.TypeName,
		Base:     VSourceTypeName,
		NoDelete: true,
		New: func(name string, rec record.Record) (any, error) {
			return sources.New(name, rec)
		},
	})
}
