package chemistry

import (
	"errors"
	"fmt"
	"time"

	"github.com/gatesim/gatebind/internal/config/record"
)

// Timestep models understood by the chemistry engine.
const (
	TimestepModelIRT = "IRT" // independent reaction times
	TimestepModelSBS = "SBS" // step-by-step
)

// DefaultEndTime bounds the chemical stage when the record does not set one.
const DefaultEndTime = time.Microsecond

// Reaction describes one entry of the reaction table: reactant species,
// product species, and the reaction rate in 1/M/s.
type Reaction struct {
	Reactants []string
	Products  []string
	Rate      float64
}

// Config is the typed configuration the constructor distills from the open
// configuration record.
type Config struct {
	// TimestepModel selects how the chemical stage advances time.
	TimestepModel string

	// EndTime is when the chemical stage stops.
	EndTime time.Duration

	// DefaultReactions enables the built-in water radiolysis reaction table.
	DefaultReactions bool

	// Reactions are user-supplied additions to the reaction table.
	Reactions []Reaction
}

// configFromRecord reads the known keys out of the record. Unknown keys are
// ignored: the record is an open mapping and other consumers may own them.
func configFromRecord(rec record.Record) (Config, error) {
	cfg := Config{
		TimestepModel:    TimestepModelIRT,
		EndTime:          DefaultEndTime,
		DefaultReactions: true,
	}

	var errs []error

	if rec.Has("timestep_model") {
		model, err := rec.GetString("timestep_model")
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.TimestepModel = model
		}
	}

	if rec.Has("end_time") {
		endTime, err := rec.GetDuration("end_time")
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.EndTime = endTime
		}
	}

	if rec.Has("default_reactions") {
		enabled, err := rec.GetBool("default_reactions")
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.DefaultReactions = enabled
		}
	}

	if rec.Has("reactions") {
		entries, err := rec.GetRecordSlice("reactions")
		if err != nil {
			errs = append(errs, err)
		} else {
			for i, entry := range entries {
				reaction, err := reactionFromRecord(entry)
				if err != nil {
					errs = append(errs, fmt.Errorf("reactions[%d]: %w", i, err))
					continue
				}
				cfg.Reactions = append(cfg.Reactions, reaction)
			}
		}
	}

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}

	return cfg, cfg.Validate()
}

func reactionFromRecord(rec record.Record) (Reaction, error) {
	var reaction Reaction
	var errs []error

	reactants, err := rec.GetStringSlice("reactants")
	if err != nil {
		errs = append(errs, err)
	}
	reaction.Reactants = reactants

	products, err := rec.GetStringSlice("products")
	if err != nil {
		errs = append(errs, err)
	}
	reaction.Products = products

	rate, err := rec.GetFloat("rate")
	if err != nil {
		errs = append(errs, err)
	}
	reaction.Rate = rate

	return reaction, errors.Join(errs...)
}

// Validate checks the distilled configuration.
func (c Config) Validate() error {
	var errs []error

	switch c.TimestepModel {
	case TimestepModelIRT, TimestepModelSBS:
	default:
		errs = append(errs, NewInvalidTimestepModelError(c.TimestepModel))
	}

	if c.EndTime <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidEndTime, c.EndTime))
	}

	for i, reaction := range c.Reactions {
		if len(reaction.Reactants) == 0 {
			errs = append(errs, fmt.Errorf("%w: entry %d has no reactants", ErrInvalidReaction, i))
		}
		if len(reaction.Products) == 0 {
			errs = append(errs, fmt.Errorf("%w: entry %d has no products", ErrInvalidReaction, i))
		}
		if reaction.Rate <= 0 {
			errs = append(
				errs,
				fmt.Errorf("%w: entry %d rate must be positive, got %g", ErrInvalidReaction, i, reaction.Rate),
			)
		}
	}

	return errors.Join(errs...)
}
