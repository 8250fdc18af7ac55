// Package sequent sizes sequential tests for two-group experiments.  Given a target
// false positive rate, a power target, a baseline conversion rate, and a minimum
// detectable effect, it computes the smallest per-group sample size and random-walk
// decision barrier that satisfy both constraints, or reports that no design is feasible
// within the configured ceilings.
package sequent

import (
	"fmt"
	"strconv"

	"sequent/pkg/stat"
)

// Config holds the parameters for a design estimation
type Config struct {
	Alpha          float64
	Power          float64
	BaselineRate   float64
	EffectSize     float64
	MaxConversions int
	MaxBarrier     int
	FixedHorizon   bool

	relativeMDE float64
	hasRelative bool
	hasAbsolute bool
}

// ConfigOption applies a single configuration value, returning an error when the value
// does not parse
type ConfigOption func(c *Config) error

func newConfig(options ...ConfigOption) (Config, []error) {
	c := Config{
		Alpha:          0.05,
		Power:          0.80,
		MaxConversions: stat.MaxConversions,
		MaxBarrier:     stat.MaxBarrier,
	}

	var errors []error
	for _, option := range options {
		if err := option(&c); err != nil {
			errors = append(errors, err)
		}
	}
	if c.hasRelative && c.hasAbsolute {
		errors = append(errors, fmt.Errorf("use either --effect-size or --mde-relative, not both"))
	}
	// the relative MDE resolves against the baseline after all options are applied so
	// the flag order does not matter
	if c.hasRelative {
		c.EffectSize = c.BaselineRate * c.relativeMDE
	}
	errors = append(errors, c.validate()...)
	return c, errors
}

// validate rejects invalid inputs before any computation starts.  Infeasibility within
// the ceilings is a legitimate result and is not checked here.
func (c Config) validate() []error {
	var errors []error
	if c.Alpha <= 0.0 || c.Alpha >= 1.0 {
		errors = append(errors, fmt.Errorf("alpha must be strictly between 0 and 1, got %f", c.Alpha))
	}
	if c.Power <= 0.0 || c.Power >= 1.0 {
		errors = append(errors, fmt.Errorf("power must be strictly between 0 and 1, got %f", c.Power))
	}
	if c.BaselineRate <= 0.0 || c.BaselineRate >= 1.0 {
		errors = append(errors, fmt.Errorf("baseline rate must be strictly between 0 and 1, got %f", c.BaselineRate))
	}
	if c.EffectSize == 0.0 {
		errors = append(errors, fmt.Errorf("effect size must be non-zero"))
	}
	if treatment := c.BaselineRate + c.EffectSize; treatment <= 0.0 || treatment >= 1.0 {
		errors = append(errors, fmt.Errorf("baseline rate plus effect size must stay strictly between 0 and 1, got %f", treatment))
	}
	if c.MaxConversions <= 0 {
		errors = append(errors, fmt.Errorf("max conversions must be positive, got %d", c.MaxConversions))
	}
	if c.MaxBarrier < 2 {
		errors = append(errors, fmt.Errorf("max barrier must be at least 2, got %d", c.MaxBarrier))
	}
	return errors
}

// Alpha sets the tolerated false positive rate
func Alpha(value string) ConfigOption {
	return func(c *Config) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("could not parse alpha %s: %v", value, err)
		}
		c.Alpha = f
		return nil
	}
}

// Power sets the required true positive rate under the alternative
func Power(value string) ConfigOption {
	return func(c *Config) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("could not parse power %s: %v", value, err)
		}
		c.Power = f
		return nil
	}
}

// BaselineRate sets the control group conversion rate
func BaselineRate(value string) ConfigOption {
	return func(c *Config) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("could not parse baseline rate %s: %v", value, err)
		}
		c.BaselineRate = f
		return nil
	}
}

// EffectSize sets the absolute minimum detectable effect
func EffectSize(value string) ConfigOption {
	return func(c *Config) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("could not parse effect size %s: %v", value, err)
		}
		c.EffectSize = f
		c.hasAbsolute = true
		return nil
	}
}

// RelativeMDE sets the minimum detectable effect as a fraction of the baseline rate,
// e.g. 0.10 for a 10% relative lift
func RelativeMDE(value string) ConfigOption {
	return func(c *Config) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("could not parse relative MDE %s: %v", value, err)
		}
		c.relativeMDE = f
		c.hasRelative = true
		return nil
	}
}

// MaxConversions sets the ceiling on conversions considered before a design is declared
// infeasible
func MaxConversions(value string) ConfigOption {
	return func(c *Config) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("could not parse max conversions %s: %v", value, err)
		}
		c.MaxConversions = n
		return nil
	}
}

// MaxBarrier sets the ceiling on the barrier search range
func MaxBarrier(value string) ConfigOption {
	return func(c *Config) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("could not parse max barrier %s: %v", value, err)
		}
		c.MaxBarrier = n
		return nil
	}
}

// FixedHorizon additionally reports the classical fixed-horizon sample size for
// comparison
func FixedHorizon() ConfigOption {
	return func(c *Config) error {
		c.FixedHorizon = true
		return nil
	}
}
