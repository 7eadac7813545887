// Package chemistry implements the native side of the GateChemistryActor
// binding: an actor that configures the chemical stage of a simulation run
// (timestep model, reaction table, stage end time).
//
// Only construction and configuration live here. Stepping and scoring are
// performed by the external engine the actor is attached to.
package chemistry

import (
	"fmt"

	"github.com/gatesim/gatebind/internal/actors"
	"github.com/gatesim/gatebind/internal/config/record"
)

// TypeName is the binding type name this actor registers under.
const TypeName = "GateChemistryActor"

var _ actors.VActor = (*Actor)(nil)

// Actor holds the parsed chemistry configuration for one instance.
type Actor struct {
	name string
	cfg  Config
	user record.Record
}

// New constructs a chemistry actor from an open configuration record.
// The record is copied; the caller keeps ownership of the original.
func New(name string, rec record.Record) (*Actor, error) {
	cfg, err := configFromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("chemistry actor %q: %w", name, err)
	}

	return &Actor{
		name: name,
		cfg:  cfg,
		user: rec.Clone(),
	}, nil
}

// Name returns the user-assigned instance name.
func (a *Actor) Name() string {
	return a.name
}

// TypeName returns the binding type name.
func (a *Actor) TypeName() string {
	return TypeName
}

// UserConfig returns the actor's copy of the configuration record.
func (a *Actor) UserConfig() record.Record {
	return a.user
}

// Config returns the typed configuration distilled from the record.
func (a *Actor) Config() Config {
	return a.cfg
}

// String returns a short description of the actor instance.
func (a *Actor) String() string {
	return fmt.Sprintf(
		"%s(%s, model=%s, end_time=%s, reactions=%d)",
		TypeName,
		a.name,
		a.cfg.TimestepModel,
		a.cfg.EndTime,
		len(a.cfg.Reactions),
	)
}
