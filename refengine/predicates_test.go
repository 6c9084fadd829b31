package refengine

import (
	"testing"

	"github.com/mqt-go/eqcheck/circuit"
)

func TestAlternatingCanHandleRejectsMismatchedQubits(t *testing.T) {
	c1 := oneQubitCircuit()
	c2 := twoQubitCircuit()
	if AlternatingCanHandle(c1, c2) {
		t.Fatal("expected false for mismatched qubit counts")
	}
}

func TestZXTransformableAcceptsSupportedVocabulary(t *testing.T) {
	c1 := oneQubitCircuit(
		circuit.Operation{Gate: "h", Targets: []int{0}},
		circuit.Operation{Gate: "s", Targets: []int{0}},
		circuit.Operation{Gate: "t", Targets: []int{0}},
	)
	c2 := oneQubitCircuit()
	if !ZXTransformable(c1, c2) {
		t.Fatal("expected true for h/s/t vocabulary")
	}
}

func TestZXTransformableIgnoresMeasurementAndBarrier(t *testing.T) {
	c1 := oneQubitCircuit(
		circuit.Operation{Gate: "barrier", Targets: []int{0}},
		circuit.Operation{Gate: "measure", Targets: []int{0}},
	)
	c2 := oneQubitCircuit()
	if !ZXTransformable(c1, c2) {
		t.Fatal("expected measurement/barrier to be ignored, not disqualifying")
	}
}
