package refengine

import (
	"context"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/verdict"
)

// ConstructionTask is the decision-diagram-equivalent reference engine: it
// builds the full dense unitary each circuit realizes and compares them
// exactly (and up to a global phase), the way a DD-based construction
// check decides exact/phase equivalence rather than sampling it.
type ConstructionTask struct {
	c1, c2    *circuit.Circuit
	tolerance float64

	report map[string]any
}

// NewConstructionTask builds a ConstructionTask over a clone of both
// circuits, so the task cannot observe mutation of the orchestrator's
// normalized originals.
func NewConstructionTask(c1, c2 *circuit.Circuit, tolerance float64) *ConstructionTask {
	return &ConstructionTask{c1: c1.Clone(), c2: c2.Clone(), tolerance: tolerance}
}

func (t *ConstructionTask) Kind() enginekind.Kind { return enginekind.Construction }

func (t *ConstructionTask) Run(ctx context.Context) (verdict.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return verdict.NoInformation, nil
	}
	t.report = map[string]any{"qubits": t.c1.NumQubits(), "tolerance": t.tolerance}

	if t.c1.NumQubits() != t.c2.NumQubits() {
		return verdict.NotEquivalent, nil
	}
	if t.c1.NumQubits() > maxDenseQubits {
		t.report["scope_limited"] = true
		return verdict.NoInformation, nil
	}

	u1, err := unitaryOf(t.c1)
	if err != nil {
		return verdict.NoInformation, engine.NewException(engine.InvalidArgument, "%v", err)
	}
	u2, err := unitaryOf(t.c2)
	if err != nil {
		return verdict.NoInformation, engine.NewException(engine.InvalidArgument, "%v", err)
	}

	equal, sameUpToPhase := matricesEqual(u1, u2, t.tolerance)
	switch {
	case equal:
		return verdict.Equivalent, nil
	case sameUpToPhase:
		return verdict.EquivalentUpToGlobalPhase, nil
	default:
		return verdict.NotEquivalent, nil
	}
}

func (t *ConstructionTask) Report() map[string]any {
	if t.report == nil {
		return map[string]any{}
	}
	return t.report
}
