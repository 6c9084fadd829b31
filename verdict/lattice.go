package verdict

import "github.com/mqt-go/eqcheck/enginekind"

// FuseContext carries the bits of run-wide state the fusion rules need
// beyond (current, kind, new): whether every simulation trial has
// finished, and, when only a single engine kind is enabled for the whole
// run, which one.
type FuseContext struct {
	AllSimulationsDone bool
	OnlyEnabledKind    enginekind.Kind
	OnlyOneKindEnabled bool
}

// FuseAction is the result of applying one fusion step: the verdict to
// carry forward, and whether the run should stop now.
type FuseAction struct {
	Next     Verdict
	Decisive bool
}

// Fuse is the single pure function that decides how a new partial verdict
// from an engine of the given kind combines with the verdict accumulated
// so far. It has no I/O and no side effects, and is the only authority the
// Sequential and Parallel runners consult to decide when to stop.
//
// Rules are applied in order; the first one that matches wins.
func Fuse(current Verdict, kind enginekind.Kind, new Verdict, ctx FuseContext) FuseAction {
	switch {
	case new == NotEquivalent:
		// Rule 1: non-equivalence from any sound engine is final.
		return FuseAction{Next: NotEquivalent, Decisive: true}

	case new == Equivalent && (kind == enginekind.Construction || kind == enginekind.Alternating):
		// Rule 2: complete DD-checkers are final.
		return FuseAction{Next: Equivalent, Decisive: true}

	case new == EquivalentUpToGlobalPhase && (kind == enginekind.Construction || kind == enginekind.Alternating):
		// Rule 3.
		return FuseAction{Next: EquivalentUpToGlobalPhase, Decisive: true}

	case kind == enginekind.ZX && (new == Equivalent || new == EquivalentUpToGlobalPhase):
		// Rule 4.
		return FuseAction{Next: new, Decisive: true}

	case kind == enginekind.ZX && new == ProbablyNotEquivalent:
		// Rule 5.
		switch {
		case current == ProbablyEquivalent && ctx.AllSimulationsDone:
			// Contradictory evidence: sims said probably-equivalent and
			// they're done, ZX says probably-not. Give up.
			return FuseAction{Next: NoInformation, Decisive: true}
		case current == ProbablyEquivalent:
			// Simulations still pending: stay and keep running.
			return FuseAction{Next: ProbablyNotEquivalent, Decisive: false}
		case current == NoInformation && ctx.OnlyOneKindEnabled && ctx.OnlyEnabledKind == enginekind.ZX:
			return FuseAction{Next: ProbablyNotEquivalent, Decisive: true}
		default:
			return FuseAction{Next: ProbablyNotEquivalent, Decisive: false}
		}

	case kind == enginekind.Simulation && (new == Equivalent || new == ProbablyEquivalent):
		// Rule 6.
		if current == ProbablyNotEquivalent && ctx.AllSimulationsDone {
			return FuseAction{Next: NoInformation, Decisive: true}
		}
		next := ProbablyEquivalent
		onlySimDone := ctx.OnlyOneKindEnabled && ctx.OnlyEnabledKind == enginekind.Simulation && ctx.AllSimulationsDone
		return FuseAction{Next: next, Decisive: onlySimDone}

	case new == NoInformation && kind != enginekind.ZX:
		// Rule 7: report, keep current, non-decisive.
		return FuseAction{Next: current, Decisive: false}

	default:
		// Rule 8.
		return FuseAction{Next: current, Decisive: false}
	}
}
