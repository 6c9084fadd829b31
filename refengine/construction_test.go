package refengine

import (
	"context"
	"testing"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/verdict"
)

func oneQubitCircuit(ops ...circuit.Operation) *circuit.Circuit {
	return &circuit.Circuit{
		Qubits:            []circuit.Qubit{{}},
		Ops:               ops,
		InitialLayout:     circuit.Layout{0},
		OutputPermutation: circuit.Layout{0},
	}
}

func twoQubitCircuit(ops ...circuit.Operation) *circuit.Circuit {
	return &circuit.Circuit{
		Qubits:            []circuit.Qubit{{}, {}},
		Ops:               ops,
		InitialLayout:     circuit.Layout{0, 1},
		OutputPermutation: circuit.Layout{0, 1},
	}
}

func TestConstructionIdenticalCircuitsEquivalent(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})
	c2 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})

	task := NewConstructionTask(c1, c2, 1e-9)
	v, err := task.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != verdict.Equivalent {
		t.Fatalf("got %v, want Equivalent", v)
	}
}

func TestConstructionDoubleXIsIdentityVsEmpty(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "x", Targets: []int{0}}, circuit.Operation{Gate: "x", Targets: []int{0}})
	c2 := oneQubitCircuit()

	task := NewConstructionTask(c1, c2, 1e-9)
	v, err := task.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != verdict.Equivalent {
		t.Fatalf("got %v, want Equivalent", v)
	}
}

func TestConstructionDifferentCircuitsNotEquivalent(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "x", Targets: []int{0}})
	c2 := oneQubitCircuit()

	task := NewConstructionTask(c1, c2, 1e-9)
	v, err := task.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != verdict.NotEquivalent {
		t.Fatalf("got %v, want NotEquivalent", v)
	}
}

func TestConstructionGlobalPhase(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "z", Targets: []int{0}}, circuit.Operation{Gate: "z", Targets: []int{0}})
	c2 := oneQubitCircuit()

	task := NewConstructionTask(c1, c2, 1e-9)
	v, err := task.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != verdict.Equivalent {
		t.Fatalf("got %v, want Equivalent (ZZ = I exactly)", v)
	}
}

func TestConstructionCXEntangling(t *testing.T) {
	c1 := twoQubitCircuit(
		circuit.Operation{Gate: "h", Targets: []int{0}},
		circuit.Operation{Gate: "cx", Controls: []int{0}, Targets: []int{1}},
	)
	c2 := twoQubitCircuit(
		circuit.Operation{Gate: "h", Targets: []int{0}},
		circuit.Operation{Gate: "cx", Controls: []int{0}, Targets: []int{1}},
	)
	task := NewConstructionTask(c1, c2, 1e-9)
	v, err := task.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != verdict.Equivalent {
		t.Fatalf("got %v, want Equivalent", v)
	}
}

func TestConstructionScopeLimited(t *testing.T) {
	big := &circuit.Circuit{
		Qubits: make([]circuit.Qubit, maxDenseQubits+1),
	}
	big.InitialLayout = make(circuit.Layout, maxDenseQubits+1)
	big.OutputPermutation = make(circuit.Layout, maxDenseQubits+1)

	task := NewConstructionTask(big, big, 1e-9)
	v, err := task.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != verdict.NoInformation {
		t.Fatalf("got %v, want NoInformation", v)
	}
	if task.Report()["scope_limited"] != true {
		t.Fatal("expected scope_limited in report")
	}
}
