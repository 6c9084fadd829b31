package refengine

import (
	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
)

// Registry keys under which this package's engines are registered into
// engine.DefaultRegistry. The isolate package's worker entrypoint looks
// tasks up by these keys when reconstructing a TaskDescriptor.
const (
	ConstructionKey = "construction"
	AlternatingKey  = "alternating"
	ZXKey           = "zx"
	SimulationKey   = "simulation"
)

func init() {
	engine.DefaultRegistry.Register(ConstructionKey, func(c1, c2 *circuit.Circuit, cfg config.Config) (engine.Task, error) {
		return NewConstructionTask(c1, c2, cfg.Execution.NumericalTolerance), nil
	})
	engine.DefaultRegistry.Register(AlternatingKey, func(c1, c2 *circuit.Circuit, cfg config.Config) (engine.Task, error) {
		return NewAlternatingTask(c1, c2, cfg.Execution.NumericalTolerance), nil
	})
	engine.DefaultRegistry.Register(ZXKey, func(c1, c2 *circuit.Circuit, cfg config.Config) (engine.Task, error) {
		return NewZXTask(c1, c2, cfg.Execution.NumericalTolerance), nil
	})
	engine.DefaultRegistry.Register(SimulationKey, func(c1, c2 *circuit.Circuit, cfg config.Config) (engine.Task, error) {
		// Seeded by Registry.Build via the Seeder interface, not here: a
		// SimulationTask constructed with seed 0 is only ever run after
		// Build calls Seed with the real trial seed.
		return NewSimulationTask(c1, c2, cfg.Simulation.StateType, cfg.Simulation.FidelityThreshold, cfg.Execution.NumericalTolerance, nil, 0), nil
	})
}
