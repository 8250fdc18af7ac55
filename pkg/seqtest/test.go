// Package seqtest executes a sequential test design against a live stream of conversion
// events.  Each event moves a ±1 random walk: +1 when the treatment arm converts, -1
// when the control arm converts.  The test decides for the treatment as soon as the walk
// reaches the design barrier and stops without a decision once the designed sample size
// is exhausted.  Decisions are one shot, matching the design search: a stopped test must
// be reset before it records again.
package seqtest

import (
	"fmt"

	"sequent/pkg/fsm"
	"sequent/pkg/metric"
)

// Group identifies which arm produced a conversion event
type Group int

const (
	Control Group = iota
	Treatment
)

// States a running test moves through.  A test starts Running and stops in either
// Decided (barrier reached) or Exhausted (sample size reached without a decision).
const (
	Running   = fsm.State("running")
	Decided   = fsm.State("decided")
	Exhausted = fsm.State("exhausted")
)

func newMachine(initial fsm.State) (*fsm.Machine, error) {
	return fsm.NewMachine(initial, fsm.WithTransitions(
		fsm.T(Running, Decided, Exhausted),
		fsm.T(Decided, Running),
		fsm.T(Exhausted, Running),
	))
}

// Test applies a sequential design to a stream of conversion events
type Test struct {
	name    metric.Name
	barrier int
	maxObs  int
	walk    int
	obs     int
	fsm     *fsm.Machine
}

// New returns a test for a design with the given barrier and sample size ceiling
func New(name metric.Name, barrier int, maxObs int) (*Test, error) {
	if barrier <= 0 {
		return nil, fmt.Errorf("barrier must be positive, got %d", barrier)
	}
	if maxObs < barrier {
		return nil, fmt.Errorf("sample size ceiling %d cannot be below the barrier %d", maxObs, barrier)
	}
	machine, err := newMachine(Running)
	if err != nil {
		return nil, fmt.Errorf("failed to create test FSM: %v", err)
	}
	return &Test{
		name:    name,
		barrier: barrier,
		maxObs:  maxObs,
		fsm:     machine,
	}, nil
}

func (t *Test) Name() string {
	return t.name.String()
}

// Record consumes one conversion event.  Recording against a stopped test is an error:
// the decision policy is one shot and a later observation must not reopen it.
func (t *Test) Record(g Group) error {
	if t.fsm.State() != Running {
		return fmt.Errorf("test has stopped in state %s", t.fsm.State())
	}
	switch g {
	case Treatment:
		t.walk++
	case Control:
		t.walk--
	default:
		return fmt.Errorf("unknown group %d", g)
	}
	t.obs++

	switch {
	case t.walk >= t.barrier:
		return t.fsm.Transition(Decided)
	case t.obs >= t.maxObs:
		return t.fsm.Transition(Exhausted)
	}
	return nil
}

// HasDecided returns true once the walk has reached the barrier.  It continues to return
// true until the test is reset.
func (t *Test) HasDecided() bool {
	return t.fsm.State() == Decided
}

// State returns the current state of the test
func (t *Test) State() fsm.State {
	return t.fsm.State()
}

// Walk returns the current net displacement of the walk
func (t *Test) Walk() int {
	return t.walk
}

// Observations returns the number of conversion events recorded
func (t *Test) Observations() int {
	return t.obs
}

// Reset discards all recorded observations and returns the test to Running
func (t *Test) Reset() {
	t.walk = 0
	t.obs = 0
	t.fsm.Reset()
}

// Metric returns the current walk displacement and observation count.  It defines the
// following values identified by metadata:
// <test name>[type=sequential value=<(walk|count)>]
//
// Example:
//
//	checkout_test[type=sequential value=walk] 12
//	checkout_test[type=sequential value=count] 4310
func (t *Test) Metric() map[string]float64 {
	out := make(map[string]float64)

	nameWalk := metric.NewNameFrom(t.name)
	nameWalk.AddMetadata(map[string]string{"type": "sequential", "value": "walk"})

	nameCount := metric.NewNameFrom(t.name)
	nameCount.AddMetadata(map[string]string{"type": "sequential", "value": "count"})

	out[nameWalk.String()] = float64(t.walk)
	out[nameCount.String()] = float64(t.obs)
	return out
}
