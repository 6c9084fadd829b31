package refengine

import (
	"context"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/verdict"
)

// ZXTask is the reference stand-in for the ZX-calculus engine. Real
// ZX-calculus rewriting can conclusively prove equivalence by reducing a
// diagram to the identity, but a failed reduction never conclusively
// proves non-equivalence — it just means the rewrite strategy didn't find
// one. This stand-in mirrors that asymmetry: a successful dense-unitary
// identity check yields a decisive Equivalent/EquivalentUpToGlobalPhase
// verdict, a failed one only yields ProbablyNotEquivalent.
type ZXTask struct {
	c1, c2    *circuit.Circuit
	tolerance float64

	report map[string]any
}

// NewZXTask builds a ZXTask over a clone of both circuits.
func NewZXTask(c1, c2 *circuit.Circuit, tolerance float64) *ZXTask {
	return &ZXTask{c1: c1.Clone(), c2: c2.Clone(), tolerance: tolerance}
}

func (t *ZXTask) Kind() enginekind.Kind { return enginekind.ZX }

func (t *ZXTask) Run(ctx context.Context) (verdict.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return verdict.NoInformation, nil
	}
	t.report = map[string]any{"qubits": t.c1.NumQubits(), "tolerance": t.tolerance}

	if !ZXTransformable(t.c1, t.c2) {
		t.report["scope_limited"] = true
		return verdict.NoInformation, nil
	}

	if err := ctx.Err(); err != nil {
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
		t.report["reduction"] = "no_identity_found"
		return verdict.ProbablyNotEquivalent, nil
	}
}

func (t *ZXTask) Report() map[string]any {
	if t.report == nil {
		return map[string]any{}
	}
	return t.report
}
