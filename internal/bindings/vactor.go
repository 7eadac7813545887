package bindings

// Base capability names shared by all actor and source bindings.
const (
	VActorTypeName  = "GateVActor"
	VSourceTypeName = "GateVSource"
)

// RegisterVActor registers the abstract actor base capability. It must run
// before any actor type registers into the same module.
func RegisterVActor(m *Module) error {
	return m.Register(&TypeDescriptor{
		Name:     VActorTypeName,
		Abstract: true,
	})
}

// RegisterVSource registers the abstract source base capability. It must
// run before any source type registers into the same module.
func RegisterVSource(m *Module) error {
	return m.Register(&TypeDescriptor{
		Name:     VSourceTypeName,
		Abstract: true,
	})
}
