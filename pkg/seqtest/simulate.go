package seqtest

import (
	"sequent/pkg/metric"
	"sequent/pkg/rng"
)

// Simulate runs repeated trials of a design under a walk step generator and returns the
// fraction of trials that reach the barrier before exhausting the sample size.  Driven
// with steps generated under the null hypothesis the fraction estimates the empirical
// false positive rate of the design; under the alternative it estimates the power.  The
// generator must produce ±1 steps, e.g. rng.NewBernoulliRNG.
func Simulate(gen rng.RNG, barrier, maxObs, trials int) (float64, error) {
	t, err := New(metric.NewName("simulate", nil), barrier, maxObs)
	if err != nil {
		return 0.0, err
	}

	decided := 0
	for i := 0; i < trials; i++ {
		for t.State() == Running {
			g := Control
			if gen.Rand() > 0.0 {
				g = Treatment
			}
			if err := t.Record(g); err != nil {
				return 0.0, err
			}
		}
		if t.HasDecided() {
			decided++
		}
		t.Reset()
	}
	return float64(decided) / float64(trials), nil
}
