// Command validate checks a sequential design by Monte Carlo simulation: it computes
// the design for a scenario, replays many random walks under the null and alternative
// hypothesis parameters, and reports the empirical false positive rate and power
// against the configured targets.
package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"sequent/pkg/rng"
	"sequent/pkg/seqtest"
	"sequent/pkg/stat"
)

const (
	Alpha    float64 = 0.05
	Power    float64 = 0.80
	Baseline float64 = 0.20
	Effect   float64 = 0.05

	Batches int = 4
	Trials  int = 25000
)

var wg sync.WaitGroup

type results struct {
	name string
	mu   sync.Mutex
	hits int
	runs int
}

func (r *results) record(decided float64, trials int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits += int(decided * float64(trials))
	r.runs += trials
}

func (r *results) rate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(r.hits) / float64(r.runs)
}

func newResults(name string) *results {
	return &results{name: name}
}

func main() {
	design := stat.EstimateSampleSize(Alpha, Power, Baseline, Effect, stat.MaxConversions, stat.MaxBarrier)
	if !design.Feasible {
		log.Fatalf("no feasible design for baseline=%f effect=%f within default ceilings", Baseline, Effect)
	}
	fmt.Printf("Design: n=%d z=%d\n", design.N, design.Z)

	nullP := 0.5
	altP := 1.0 / (1.0 + (Baseline+Effect)/Baseline)

	falsePositives := newResults("null")
	truePositives := newResults("alt")

	start := time.Now()
	for i := 0; i < Batches; i++ {
		wg.Add(2)
		go decisionRate(falsePositives, 1.0-nullP, design)
		go decisionRate(truePositives, 1.0-altP, design)
	}
	wg.Wait()
	fmt.Printf("Time Elapsed: %v\n", time.Since(start))

	fmt.Printf("Empirical false positive rate: %1.5f (target < %1.2f)\n", falsePositives.rate(), Alpha)
	fmt.Printf("Empirical power: %1.5f (target > %1.2f)\n", truePositives.rate(), Power)
}

// decisionRate simulates Trials sequential runs where the walk steps up with the given
// probability and records the fraction that reach the barrier before n is exhausted
func decisionRate(res *results, upProb float64, design stat.Design) {
	defer wg.Done()
	gen := rng.NewBernoulliRNG(upProb)
	decided, err := seqtest.Simulate(gen, design.Z, design.N, Trials)
	if err != nil {
		log.Fatalf("unexpected error simulating design: %v", err)
	}
	res.record(decided, Trials)
}
