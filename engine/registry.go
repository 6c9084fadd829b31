package engine

import (
	"fmt"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/enginekind"
)

// Factory constructs a Task from its construction parameters. Factories
// are registered under a stable key so a worker process (which only
// receives a serialized TaskDescriptor, not a Go closure) can rebuild the
// same task the orchestrator selected. Factories that need a seed (the
// Simulation engine) get one through Seeder, not through this signature —
// Build calls it after construction, so a factory never has to thread a
// seed it ignores.
type Factory func(c1, c2 *circuit.Circuit, cfg config.Config) (Task, error)

// Registry maps engine keys to factories. A package-level DefaultRegistry
// is populated by refengine's init(); isolate workers consult it when
// reconstructing a task from a TaskDescriptor.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds factory under key, panicking on a duplicate key the way
// database/sql driver registration does — this only ever happens at
// package init time, so a duplicate is a programming error, not a runtime
// condition to recover from.
func (r *Registry) Register(key string, factory Factory) {
	if _, exists := r.factories[key]; exists {
		panic(fmt.Sprintf("engine: factory %q already registered", key))
	}
	r.factories[key] = factory
}

// Build reconstructs a Task for key from its construction parameters,
// then seeds it (if it implements Seeder) before handing it back — the
// one chokepoint every runner and worker entrypoint goes through to
// reconstruct a task, so it's also the one place that needs to know
// about Seeder at all.
func (r *Registry) Build(key string, c1, c2 *circuit.Circuit, cfg config.Config, seed uint64) (Task, error) {
	factory, ok := r.factories[key]
	if !ok {
		return nil, NewException(InvalidArgument, "no factory registered for key %q", key)
	}
	task, err := factory(c1, c2, cfg)
	if err != nil {
		return nil, err
	}
	if s, ok := task.(Seeder); ok {
		s.Seed(seed)
	}
	return task, nil
}

// DefaultRegistry is the process-wide registry reference engines register
// themselves into.
var DefaultRegistry = NewRegistry()

// TaskDescriptor names a Task without holding a live Go value for it, so
// it can be serialized (CBOR, over the isolator's pipe) and reconstructed
// in a worker process via DefaultRegistry.Build.
type TaskDescriptor struct {
	Key  string
	Kind enginekind.Kind
	Seed uint64
}
