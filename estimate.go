package sequent

import (
	"sequent/pkg/stat"
)

// Result is the outcome of a design estimation.  Design.Feasible is false when no
// sample size satisfied the constraints within the ceilings; callers should treat that
// as an answer, not a failure.
type Result struct {
	Design stat.Design

	// fixed-horizon comparison, populated when the configuration asks for it
	FixedN        int
	FixedFeasible bool
}

// Estimation is a configured design estimation
type Estimation struct {
	config Config
}

// New validates the configured options and returns an estimation ready to run.  All
// invalid inputs are reported at once.
func New(options ...ConfigOption) (*Estimation, []error) {
	c, errs := newConfig(options...)
	if len(errs) > 0 {
		return nil, errs
	}
	return &Estimation{config: c}, nil
}

// Config returns the validated configuration
func (e *Estimation) Config() Config {
	return e.config
}

// Run searches for the cheapest feasible sequential design.  The odd and even barrier
// searches inside the estimator run concurrently; each top level Run is otherwise
// sequential and deterministic for a fixed configuration.
func (e *Estimation) Run() Result {
	c := e.config
	res := Result{
		Design: stat.EstimateSampleSize(c.Alpha, c.Power, c.BaselineRate, c.EffectSize, c.MaxConversions, c.MaxBarrier),
	}
	if c.FixedHorizon {
		res.FixedN, res.FixedFeasible = stat.FixedHorizonSampleSize(c.Alpha, c.Power, c.BaselineRate, c.EffectSize)
	}
	return res
}
