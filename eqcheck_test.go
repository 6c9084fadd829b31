package eqcheck

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/logger"
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

func TestManagerRunEquivalentCircuits(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})
	c2 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})

	m, err := New(c1, c2, config.WithExecution(config.Execution{
		RunConstruction:    true,
		RunAlternating:     true,
		RunZX:              true,
		NumericalTolerance: 1e-13,
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !verdict.ConsideredEquivalent(res.Equivalence) {
		t.Fatalf("expected an equivalent verdict, got %v", res.Equivalence)
	}
	if len(res.Checkers) == 0 {
		t.Fatal("expected checker reports to be populated")
	}
}

func TestManagerRunNotEquivalentCircuits(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})
	c2 := oneQubitCircuit(circuit.Operation{Gate: "x", Targets: []int{0}})

	m, err := New(c1, c2, config.WithExecution(config.Execution{
		RunConstruction:    true,
		RunAlternating:     true,
		RunZX:              true,
		NumericalTolerance: 1e-13,
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Equivalence != verdict.NotEquivalent {
		t.Fatalf("expected NotEquivalent, got %v", res.Equivalence)
	}
}

func TestManagerRunEmptyCircuitsAreEquivalent(t *testing.T) {
	c1 := oneQubitCircuit()
	c2 := oneQubitCircuit()

	m, err := New(c1, c2, config.DisableAllCheckers(), config.WithExecution(config.Execution{RunConstruction: true}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Equivalence != verdict.Equivalent {
		t.Fatalf("expected Equivalent for two empty circuits, got %v", res.Equivalence)
	}
}

func TestManagerRunNoEnginesEnabledYieldsNoInformation(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})
	c2 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})

	m, err := New(c1, c2, config.DisableAllCheckers())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Equivalence != verdict.NoInformation {
		t.Fatalf("expected NoInformation when no engines are enabled, got %v", res.Equivalence)
	}
}

func TestManagerDisableAllCheckersConvenienceMethod(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})
	c2 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})

	m, err := New(c1, c2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.DisableAllCheckers()

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Equivalence != verdict.NoInformation {
		t.Fatalf("expected NoInformation after DisableAllCheckers, got %v", res.Equivalence)
	}
}

func TestManagerRunZXOnlyEngineDisabledYieldsNoInformation(t *testing.T) {
	old := logger.Logger()
	defer logger.Set(old)
	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))

	c1 := oneQubitCircuit(circuit.Operation{Gate: "rx", Targets: []int{0}})
	c2 := oneQubitCircuit(circuit.Operation{Gate: "rx", Targets: []int{0}})

	m, err := New(c1, c2, config.WithExecution(config.Execution{
		RunZX:              true,
		NumericalTolerance: 1e-13,
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Equivalence != verdict.NoInformation {
		t.Fatalf("expected NoInformation when zx is the only enabled engine and cannot transform this pair, got %v", res.Equivalence)
	}
	if !strings.Contains(buf.String(), "zx engine cannot transform") {
		t.Fatalf("expected a logged warning explaining the NoInformation result, got %q", buf.String())
	}
}

func TestManagerSymbolicPathYieldsZXVerdict(t *testing.T) {
	c1 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})
	c1.HasSymbolicParams = true
	c2 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})

	m, err := New(c1, c2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !verdict.ConsideredEquivalent(res.Equivalence) {
		t.Fatalf("expected an equivalent verdict on the symbolic path, got %v", res.Equivalence)
	}
}
