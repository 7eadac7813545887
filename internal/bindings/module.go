// Package bindings implements the registration boundary between native
// simulation types and the scripting front-end.
//
// A Module is a named registration table. Native packages register type
// descriptors into it at startup; the host environment then looks types up
// by name and constructs instances from open configuration records. All
// registration runs single-threaded during initialization, but the table
// is safe for concurrent lookups afterwards.
package bindings

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gatesim/gatebind/internal/config/record"
	"github.com/gofrs/uuid/v5"
)

// Module is a registration table mapping type names to descriptors.
type Module struct {
	name  string
	mu    sync.RWMutex
	table map[string]*TypeDescriptor
}

// NewModule creates an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{
		name:  name,
		table: make(map[string]*TypeDescriptor),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Register adds a type descriptor to the module table.
//
// Registration fails fast when the descriptor's declared base capability is
// not already present: the ordering between base and subtype registration
// is a contract the caller must satisfy at startup. Duplicate names are
// rejected and never overwrite the existing entry.
func (m *Module) Register(desc *TypeDescriptor) error {
	if desc == nil {
		return fmt.Errorf("module %q: nil type descriptor", m.name)
	}
	if err := desc.Validate(); err != nil {
		return fmt.Errorf("module %q: %w", m.name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.table[desc.Name]; exists {
		return fmt.Errorf("module %q: %w: %s", m.name, ErrDuplicateType, desc.Name)
	}

	if desc.Base != "" {
		if _, ok := m.table[desc.Base]; !ok {
			return fmt.Errorf(
				"module %q: registering %s: %w: %s",
				m.name, desc.Name, ErrBaseNotRegistered, desc.Base,
			)
		}
	}

	m.table[desc.Name] = desc
	return nil
}

// Lookup returns the descriptor registered under name.
func (m *Module) Lookup(name string) (*TypeDescriptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	desc, ok := m.table[name]
	return desc, ok
}

// Types returns the sorted names of all registered types.
func (m *Module) Types() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.table))
	for name := range m.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSubtype reports whether name is base itself or a (transitive) subtype
// of it. Unknown names are not subtypes of anything.
func (m *Module) IsSubtype(name, base string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for name != "" {
		desc, ok := m.table[name]
		if !ok {
			return false
		}
		if desc.Name == base {
			return true
		}
		name = desc.Base
	}
	return false
}

// Construct builds an instance of the named type from cfg and returns a
// handle for it. cfg must be a configuration record; anything else is a
// boundary error, not a reason to panic. Errors from the native constructor
// are wrapped with construction context and otherwise passed through.
func (m *Module) Construct(typeName, instanceName string, cfg any) (*Handle, error) {
	desc, ok := m.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("module %q: %w: %s", m.name, ErrTypeNotRegistered, typeName)
	}
	if desc.Abstract {
		return nil, fmt.Errorf("module %q: %w: %s", m.name, ErrAbstractType, typeName)
	}

	rec, err := asRecord(cfg)
	if err != nil {
		return nil, fmt.Errorf("module %q: constructing %s: %w", m.name, typeName, err)
	}

	native, err := desc.New(instanceName, rec)
	if err != nil {
		return nil, fmt.Errorf("constructing %s %q: %w", typeName, instanceName, err)
	}

	return &Handle{
		id:       uuid.Must(uuid.NewV6()),
		typeName: typeName,
		native:   native,
		owned:    !desc.NoDelete,
	}, nil
}

// asRecord coerces the boundary config argument into a record. nil is
// treated as an empty record so constructors see their defaults.
func asRecord(cfg any) (record.Record, error) {
	switch v := cfg.(type) {
	case nil:
		return record.Record{}, nil
	case record.Record:
		return v, nil
	case map[string]any:
		return record.Record(v), nil
	default:
		return nil, fmt.Errorf("%w: want a string-keyed mapping, got %T", ErrInvalidConfigType, cfg)
	}
}

// String returns a short description of the module table.
func (m *Module) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("Module(%s, %d types)", m.name, len(m.table))
}
