package refengine

import (
	"context"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/verdict"
)

// AlternatingTask is the reference stand-in for an alternating (G1 then
// G2-dagger) equivalence check: it composes circuit one's unitary with the
// adjoint of circuit two's unitary and checks the product collapses to the
// identity, the way an alternating decision-diagram construction checks
// for identity without ever materializing either circuit's full unitary on
// its own.
type AlternatingTask struct {
	c1, c2    *circuit.Circuit
	tolerance float64

	report map[string]any
}

// NewAlternatingTask builds an AlternatingTask over a clone of both
// circuits.
func NewAlternatingTask(c1, c2 *circuit.Circuit, tolerance float64) *AlternatingTask {
	return &AlternatingTask{c1: c1.Clone(), c2: c2.Clone(), tolerance: tolerance}
}

func (t *AlternatingTask) Kind() enginekind.Kind { return enginekind.Alternating }

func (t *AlternatingTask) Run(ctx context.Context) (verdict.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return verdict.NoInformation, nil
	}
	t.report = map[string]any{"qubits": t.c1.NumQubits(), "tolerance": t.tolerance}

	if !AlternatingCanHandle(t.c1, t.c2) {
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

	product := compose(adjoint(u2), u1)
	identity := identityUnitary(t.c1.NumQubits())

	equal, sameUpToPhase := matricesEqual(product, identity, t.tolerance)
	switch {
	case equal:
		return verdict.Equivalent, nil
	case sameUpToPhase:
		return verdict.EquivalentUpToGlobalPhase, nil
	default:
		return verdict.NotEquivalent, nil
	}
}

func (t *AlternatingTask) Report() map[string]any {
	if t.report == nil {
		return map[string]any{}
	}
	return t.report
}
