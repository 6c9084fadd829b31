package isolate

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/verdict"

	_ "github.com/mqt-go/eqcheck/refengine"
)

// TestMain lets the test binary itself double as the re-exec'd worker: a
// Spawn call launches os.Args[0] (this very binary) with EQCHECK_WORKER=1,
// and RunWorkerIfRequested intercepts before the normal test run starts.
func TestMain(m *testing.M) {
	RunWorkerIfRequested()
	os.Exit(m.Run())
}

func oneQubitCircuit(ops ...circuit.Operation) *circuit.Circuit {
	return &circuit.Circuit{
		Qubits:            []circuit.Qubit{{}},
		Ops:               ops,
		InitialLayout:     circuit.Layout{0},
		OutputPermutation: circuit.Layout{0},
	}
}

func TestIsolatorSpawnAndWait(t *testing.T) {
	iso := NewIsolator()
	c1 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})
	c2 := oneQubitCircuit(circuit.Operation{Gate: "h", Targets: []int{0}})
	cfg := config.Default()

	id := uuid.New()
	desc := engine.TaskDescriptor{Key: "construction", Kind: enginekind.Construction, Seed: 0}
	if err := iso.Spawn(id, desc, c1, c2, cfg); err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	out, ok := iso.WaitAny(ctx)
	if !ok {
		t.Fatal("WaitAny timed out")
	}
	if out.ID != id {
		t.Fatalf("ID mismatch: got %v want %v", out.ID, id)
	}
	if !out.Completed {
		t.Fatalf("task did not complete: exception=%v err=%v", out.Exception, out.Err)
	}
	if out.Verdict != verdict.Equivalent {
		t.Fatalf("got %v, want Equivalent", out.Verdict)
	}
	if iso.Running() != 0 {
		t.Fatalf("expected 0 running, got %d", iso.Running())
	}
}

func TestIsolatorUnknownKeyReportsException(t *testing.T) {
	iso := NewIsolator()
	c1 := oneQubitCircuit()
	c2 := oneQubitCircuit()
	cfg := config.Default()

	id := uuid.New()
	desc := engine.TaskDescriptor{Key: "no-such-engine", Kind: enginekind.Construction}
	if err := iso.Spawn(id, desc, c1, c2, cfg); err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	out, ok := iso.WaitAny(ctx)
	if !ok {
		t.Fatal("WaitAny timed out")
	}
	if out.Completed {
		t.Fatal("expected Completed == false for an unregistered engine key")
	}
	if out.Exception != engine.InvalidArgument {
		t.Fatalf("got exception %v, want InvalidArgument", out.Exception)
	}
}

func TestIsolatorTerminateAll(t *testing.T) {
	iso := NewIsolator()
	c1 := oneQubitCircuit()
	c2 := oneQubitCircuit()
	cfg := config.Default()

	id := uuid.New()
	desc := engine.TaskDescriptor{Key: "simulation", Kind: enginekind.Simulation, Seed: 1}
	if err := iso.Spawn(id, desc, c1, c2, cfg); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	iso.TerminateAll()
	if iso.Running() != 0 {
		t.Fatalf("expected 0 running after TerminateAll, got %d", iso.Running())
	}
}
