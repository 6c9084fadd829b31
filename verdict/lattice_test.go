package verdict

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/mqt-go/eqcheck/enginekind"
)

func TestFuseNotEquivalentShortCircuits(t *testing.T) {
	kinds := []enginekind.Kind{enginekind.Construction, enginekind.Simulation, enginekind.Alternating, enginekind.ZX}
	currents := []Verdict{NoInformation, ProbablyEquivalent, ProbablyNotEquivalent, EquivalentUpToPhase}

	for _, k := range kinds {
		for _, c := range currents {
			action := Fuse(c, k, NotEquivalent, FuseContext{})
			if action.Next != NotEquivalent || !action.Decisive {
				t.Fatalf("Fuse(%v, %v, NotEquivalent) = %+v, want {NotEquivalent, true}", c, k, action)
			}
		}
	}
}

func TestFuseCompleteCheckersFinal(t *testing.T) {
	for _, k := range []enginekind.Kind{enginekind.Construction, enginekind.Alternating} {
		action := Fuse(NoInformation, k, Equivalent, FuseContext{})
		if action.Next != Equivalent || !action.Decisive {
			t.Fatalf("Fuse(_, %v, Equivalent) = %+v", k, action)
		}
		action = Fuse(NoInformation, k, EquivalentUpToGlobalPhase, FuseContext{})
		if action.Next != EquivalentUpToGlobalPhase || !action.Decisive {
			t.Fatalf("Fuse(_, %v, EquivalentUpToGlobalPhase) = %+v", k, action)
		}
	}
}

func TestFuseZXFinal(t *testing.T) {
	for _, v := range []Verdict{Equivalent, EquivalentUpToGlobalPhase} {
		action := Fuse(NoInformation, enginekind.ZX, v, FuseContext{})
		if action.Next != v || !action.Decisive {
			t.Fatalf("Fuse(_, ZX, %v) = %+v", v, action)
		}
	}
}

func TestFuseZXProbablyNotEquivalent(t *testing.T) {
	// contradictory evidence, sims done -> give up
	action := Fuse(ProbablyEquivalent, enginekind.ZX, ProbablyNotEquivalent, FuseContext{AllSimulationsDone: true})
	if action.Next != NoInformation || !action.Decisive {
		t.Fatalf("contradictory case: got %+v", action)
	}

	// sims still pending -> stay, non-decisive
	action = Fuse(ProbablyEquivalent, enginekind.ZX, ProbablyNotEquivalent, FuseContext{AllSimulationsDone: false})
	if action.Next != ProbablyNotEquivalent || action.Decisive {
		t.Fatalf("pending case: got %+v", action)
	}

	// ZX-only enabled, no info yet -> decisive
	action = Fuse(NoInformation, enginekind.ZX, ProbablyNotEquivalent, FuseContext{OnlyOneKindEnabled: true, OnlyEnabledKind: enginekind.ZX})
	if action.Next != ProbablyNotEquivalent || !action.Decisive {
		t.Fatalf("zx-only case: got %+v", action)
	}

	// otherwise: non-decisive
	action = Fuse(NoInformation, enginekind.ZX, ProbablyNotEquivalent, FuseContext{})
	if action.Next != ProbablyNotEquivalent || action.Decisive {
		t.Fatalf("default case: got %+v", action)
	}
}

func TestFuseSimulation(t *testing.T) {
	for _, v := range []Verdict{Equivalent, ProbablyEquivalent} {
		// contradictory: current says not-equivalent, sims all done
		action := Fuse(ProbablyNotEquivalent, enginekind.Simulation, v, FuseContext{AllSimulationsDone: true})
		if action.Next != NoInformation || !action.Decisive {
			t.Fatalf("contradictory sim case (%v): got %+v", v, action)
		}

		// normal case, not done, not only-enabled
		action = Fuse(NoInformation, enginekind.Simulation, v, FuseContext{})
		if action.Next != ProbablyEquivalent || action.Decisive {
			t.Fatalf("normal sim case (%v): got %+v", v, action)
		}

		// only sim enabled and all done -> decisive
		action = Fuse(NoInformation, enginekind.Simulation, v, FuseContext{
			OnlyOneKindEnabled: true, OnlyEnabledKind: enginekind.Simulation, AllSimulationsDone: true,
		})
		if action.Next != ProbablyEquivalent || !action.Decisive {
			t.Fatalf("only-sim-done case (%v): got %+v", v, action)
		}
	}
}

func TestFuseNoInformationNonZX(t *testing.T) {
	for _, k := range []enginekind.Kind{enginekind.Construction, enginekind.Simulation, enginekind.Alternating} {
		for _, c := range []Verdict{ProbablyEquivalent, ProbablyNotEquivalent, EquivalentUpToPhase} {
			action := Fuse(c, k, NoInformation, FuseContext{})
			if action.Next != c || action.Decisive {
				t.Fatalf("Fuse(%v, %v, NoInformation) = %+v, want {%v, false}", c, k, action, c)
			}
		}
	}
}

func TestFuseDefaultKeepsCurrent(t *testing.T) {
	action := Fuse(ProbablyEquivalent, enginekind.Construction, ProbablyNotEquivalent, FuseContext{})
	if action.Next != ProbablyEquivalent || action.Decisive {
		t.Fatalf("default case: got %+v", action)
	}
}

// TestFuseNotEquivalentIsDecisiveFromAnyState is a property test: for any
// engine kind and any current verdict, fusing a NotEquivalent result
// yields NotEquivalent and marks the action decisive.
func TestFuseNotEquivalentIsDecisiveFromAnyState(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	kindGen := gen.OneConstOf(enginekind.Construction, enginekind.Simulation, enginekind.Alternating, enginekind.ZX)

	properties.Property("NotEquivalent short-circuits regardless of kind or current verdict", prop.ForAll(
		func(k enginekind.Kind, current Verdict) bool {
			action := Fuse(current, k, NotEquivalent, FuseContext{})
			return action.Next == NotEquivalent && action.Decisive
		},
		kindGen,
		gen.OneConstOf(NoInformation, NotEquivalent, ProbablyNotEquivalent, ProbablyEquivalent, EquivalentUpToPhase, EquivalentUpToGlobalPhase, Equivalent),
	))

	properties.TestingRun(t)
}
