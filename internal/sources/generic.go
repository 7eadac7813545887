package sources

import (
	"errors"
	"fmt"

	"github.com/gatesim/gatebind/internal/config/record"
)

// TypeName is the binding type name the generic source registers under.
const TypeName = "GateGenericSource"

// DefaultParticle is used when the record does not name one.
const DefaultParticle = "gamma"

var _ VSource = (*GenericSource)(nil)

// Config is the typed configuration for a generic particle source:
// which particle to emit, how many (or at what activity), and the
// mono-energetic spectrum parameters.
type Config struct {
	Particle    string
	N           int64   // number of primaries; 0 means activity-driven
	Activity    float64 // in Bq; 0 means count-driven
	EnergyMeV   float64 // mono energy
	EnergySigma float64 // gaussian sigma around the mono energy
}

// GenericSource holds the parsed configuration for one source instance.
type GenericSource struct {
	name string
	cfg  Config
	user record.Record
}

// New constructs a generic source from an open configuration record.
func New(name string, rec record.Record) (*GenericSource, error) {
	cfg := Config{Particle: DefaultParticle}

	var errs []error

	if rec.Has("particle") {
		particle, err := rec.GetString("particle")
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Particle = particle
		}
	}

	for key, dst := range map[string]*float64{
		"activity":     &cfg.Activity,
		"energy":       &cfg.EnergyMeV,
		"energy_sigma": &cfg.EnergySigma,
	} {
		if !rec.Has(key) {
			continue
		}
		v, err := rec.GetFloat(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*dst = v
	}

	if rec.Has("n") {
		n, err := rec.GetInt("n")
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.N = n
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("generic source %q: %w", name, errors.Join(errs...))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generic source %q: %w", name, err)
	}

	return &GenericSource{
		name: name,
		cfg:  cfg,
		user: rec.Clone(),
	}, nil
}

// Validate checks the distilled source configuration.
func (c Config) Validate() error {
	var errs []error

	if c.Particle == "" {
		errs = append(errs, ErrEmptyParticle)
	}
	if c.N < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrNegativeCount, c.N))
	}
	if c.Activity < 0 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrNegativeActivity, c.Activity))
	}
	if c.EnergyMeV < 0 || c.EnergySigma < 0 {
		errs = append(errs, ErrNegativeEnergy)
	}

	return errors.Join(errs...)
}

// Name returns the user-assigned instance name.
func (s *GenericSource) Name() string {
	return s.name
}

// TypeName returns the binding type name.
func (s *GenericSource) TypeName() string {
	return TypeName
}

// UserConfig returns the source's copy of the configuration record.
func (s *GenericSource) UserConfig() record.Record {
	return s.user
}

// Config returns the typed configuration distilled from the record.
func (s *GenericSource) Config() Config {
	return s.cfg
}

// String returns a short description of the source instance.
func (s *GenericSource) String() string {
	return fmt.Sprintf(
		"%s(%s, particle=%s, n=%d, activity=%g)",
		TypeName,
		s.name,
		s.cfg.Particle,
		s.cfg.N,
		s.cfg.Activity,
	)
}
