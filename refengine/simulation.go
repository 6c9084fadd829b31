package refengine

import (
	"context"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/verdict"
)

// SimulationTask draws one trial state, runs both circuits' unitaries
// against it, and compares the resulting statevectors by fidelity. A
// single SimulationTask represents one trial, the way the Selector
// expands the Simulation engine into one TaskDescriptor per trial (see
// selector.Select) rather than one task looping over all trials itself.
type SimulationTask struct {
	c1, c2 *circuit.Circuit
	stateType config.StateType
	fidelityThreshold float64
	tolerance         float64
	gen               *StateGenerator
	seed              uint64

	report map[string]any
}

// NewSimulationTask builds a SimulationTask over a clone of both circuits.
// Run reseeds gen with seed before drawing the trial state; with a nil gen
// (as every registry-built task has) Run draws from a private generator
// seeded with seed, so a reconstructed task (in a worker process, from a
// TaskDescriptor) reproduces the same trial state without sharing a live
// generator across a process boundary.
func NewSimulationTask(c1, c2 *circuit.Circuit, stateType config.StateType, fidelityThreshold, tolerance float64, gen *StateGenerator, seed uint64) *SimulationTask {
	return &SimulationTask{
		c1: c1.Clone(), c2: c2.Clone(),
		stateType: stateType, fidelityThreshold: fidelityThreshold, tolerance: tolerance,
		gen: gen, seed: seed,
	}
}

// Seed implements engine.Seeder.
func (t *SimulationTask) Seed(seed uint64) { t.seed = seed }

func (t *SimulationTask) Kind() enginekind.Kind { return enginekind.Simulation }

func (t *SimulationTask) Run(ctx context.Context) (verdict.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return verdict.NoInformation, nil
	}
	t.report = map[string]any{"qubits": t.c1.NumQubits(), "state_type": t.stateType.String(), "seed": t.seed}

	if t.c1.NumQubits() != t.c2.NumQubits() {
		return verdict.NotEquivalent, nil
	}
	if t.c1.NumQubits() > maxDenseQubits {
		t.report["scope_limited"] = true
		return verdict.NoInformation, nil
	}

	gen := t.gen
	if gen == nil {
		gen = NewStateGenerator(t.seed)
	} else {
		gen.Seed(t.seed)
	}
	initial := gen.Next(t.stateType, t.c1.NumQubits())

	u1, err := unitaryOf(t.c1)
	if err != nil {
		return verdict.NoInformation, engine.NewException(engine.InvalidArgument, "%v", err)
	}
	u2, err := unitaryOf(t.c2)
	if err != nil {
		return verdict.NoInformation, engine.NewException(engine.InvalidArgument, "%v", err)
	}

	out1 := applyMatrix(u1, initial)
	out2 := applyMatrix(u2, initial)
	f := fidelity(out1, out2)
	t.report["fidelity"] = f

	switch {
	case f >= 1-t.tolerance:
		return verdict.Equivalent, nil
	case f >= t.fidelityThreshold:
		return verdict.ProbablyEquivalent, nil
	default:
		return verdict.NotEquivalent, nil
	}
}

func (t *SimulationTask) Report() map[string]any {
	if t.report == nil {
		return map[string]any{}
	}
	return t.report
}
