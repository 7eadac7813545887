package config

import (
	"errors"
	"fmt"

	"github.com/gatesim/gatebind/internal/bindings"
	"github.com/gatesim/gatebind/internal/config/errz"
	"github.com/gatesim/gatebind/internal/config/record"
	"github.com/gatesim/gatebind/internal/interpolation"
)

// ActorDef declares one instance to construct from the binding module:
// a registered type name, an instance name, and the type's configuration.
type ActorDef struct {
	Type   string         `toml:"type" env_interpolation:"yes"`
	Name   string         `toml:"name" env_interpolation:"yes"`
	Config map[string]any `toml:"config"`
}

// ActorDefs is a collection of actor declarations.
type ActorDefs []ActorDef

// Record returns the declaration config as a Record.
func (a ActorDef) Record() record.Record {
	if a.Config == nil {
		return record.Record{}
	}
	return record.Record(a.Config)
}

// String returns a single-line description of the declaration.
func (a ActorDef) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Type)
}

// Validate checks a single actor declaration. Type names are checked
// against the constructible types of the standard module table.
func (a *ActorDef) Validate(knownTypes map[string]bool) error {
	var errs []error

	if err := interpolation.InterpolateStruct(a); err != nil {
		errs = append(errs, fmt.Errorf("actor '%s': %w", a.Name, err))
	}

	if a.Name == "" {
		errs = append(errs, fmt.Errorf("%w: actor name", errz.ErrEmptyName))
	}

	if a.Type == "" {
		errs = append(errs, fmt.Errorf("%w: actor '%s' has no type", errz.ErrMissingRequiredField, a.Name))
	} else if !knownTypes[a.Type] {
		errs = append(errs, fmt.Errorf("%w: '%s' for actor '%s'", errz.ErrInvalidActorType, a.Type, a.Name))
	}

	return errors.Join(errs...)
}

// Validate checks all declarations and rejects duplicate instance names.
func (actors ActorDefs) Validate() error {
	knownTypes := make(map[string]bool)
	for _, name := range bindings.StandardTypeNames() {
		knownTypes[name] = true
	}

	var errs []error
	seen := make(map[string]bool, len(actors))
	for i := range actors {
		if err := actors[i].Validate(knownTypes); err != nil {
			errs = append(errs, err)
			continue
		}

		if seen[actors[i].Name] {
			errs = append(errs, fmt.Errorf("%w: actor '%s'", errz.ErrDuplicateName, actors[i].Name))
		}
		seen[actors[i].Name] = true
	}

	return errors.Join(errs...)
}
