package engine

import (
	"context"
	"testing"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/verdict"
)

type stubTask struct{ kind enginekind.Kind }

func (s *stubTask) Kind() enginekind.Kind { return s.kind }
func (s *stubTask) Run(context.Context) (verdict.Verdict, error) {
	return verdict.Equivalent, nil
}
func (s *stubTask) Report() map[string]any { return map[string]any{"stub": true} }

// stubSeededTask implements Seeder so TestRegistryBuildSeedsViaSeeder can
// assert Build actually drives the interface, not just construct a task
// that happens to satisfy it.
type stubSeededTask struct {
	stubTask
	seed uint64
}

func (s *stubSeededTask) Seed(seed uint64) { s.seed = seed }

func TestRegistryBuildAndRun(t *testing.T) {
	r := NewRegistry()
	r.Register("stub", func(c1, c2 *circuit.Circuit, cfg config.Config) (Task, error) {
		return &stubTask{kind: enginekind.Construction}, nil
	})

	task, err := r.Build("stub", nil, nil, config.Default(), 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	v, err := task.Run(context.Background())
	if err != nil || v != verdict.Equivalent {
		t.Fatalf("Run() = (%v, %v)", v, err)
	}
}

func TestRegistryBuildSeedsViaSeeder(t *testing.T) {
	r := NewRegistry()
	r.Register("seeded", func(c1, c2 *circuit.Circuit, cfg config.Config) (Task, error) {
		return &stubSeededTask{stubTask: stubTask{kind: enginekind.Simulation}}, nil
	})

	task, err := r.Build("seeded", nil, nil, config.Default(), 42)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	seeded, ok := task.(*stubSeededTask)
	if !ok {
		t.Fatalf("Build returned %T, want *stubSeededTask", task)
	}
	if seeded.seed != 42 {
		t.Fatalf("Build did not seed task via Seeder: got %d, want 42", seeded.seed)
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Build("missing", nil, nil, config.Default(), 0); err == nil {
		t.Fatal("expected error for unknown key")
	} else if Classify(err) != InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", Classify(err))
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register("dup", func(c1, c2 *circuit.Circuit, cfg config.Config) (Task, error) {
		return nil, nil
	})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	r.Register("dup", func(c1, c2 *circuit.Circuit, cfg config.Config) (Task, error) {
		return nil, nil
	})
}
