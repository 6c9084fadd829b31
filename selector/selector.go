// Package selector implements the Engine Selector: from a normalized
// circuit pair and configuration, it decides which engines are eligible
// and produces the multiset of engine.TaskDescriptor values the runners
// fan out over.
package selector

import (
	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/logger"
	"github.com/mqt-go/eqcheck/refengine"
)

// Select applies the eligibility rules verbatim: Alternating gated on
// refengine.AlternatingCanHandle (falling back to a Construction task and
// a warning when it cannot), ZX gated on refengine.ZXTransformable,
// Simulation contributing up to cfg.Simulation.MaxSims trials clamped to
// 2^n for ComputationalBasis circuits with n <= 63 non-ancillary qubits,
// and the symbolic-path single-ZX-task-or-nothing rule.
func Select(c1, c2 *circuit.Circuit, cfg config.Config) []engine.TaskDescriptor {
	if c1.HasSymbolicParams || c2.HasSymbolicParams {
		if refengine.ZXTransformable(c1, c2) {
			return []engine.TaskDescriptor{{Key: refengine.ZXKey, Kind: enginekind.ZX}}
		}
		return nil
	}

	var descs []engine.TaskDescriptor

	constructionAdded := false
	if cfg.Execution.RunConstruction {
		descs = append(descs, engine.TaskDescriptor{Key: refengine.ConstructionKey, Kind: enginekind.Construction})
		constructionAdded = true
	}

	if cfg.Execution.RunAlternating {
		if refengine.AlternatingCanHandle(c1, c2) {
			descs = append(descs, engine.TaskDescriptor{Key: refengine.AlternatingKey, Kind: enginekind.Alternating})
		} else {
			logger.ForEngine(enginekind.Alternating).Warn().Msg("selector: alternating engine cannot handle this circuit pair, falling back to construction")
			if !constructionAdded {
				descs = append(descs, engine.TaskDescriptor{Key: refengine.ConstructionKey, Kind: enginekind.Construction})
				constructionAdded = true
			}
		}
	}

	if cfg.Execution.RunZX {
		if refengine.ZXTransformable(c1, c2) {
			descs = append(descs, engine.TaskDescriptor{Key: refengine.ZXKey, Kind: enginekind.ZX})
		} else {
			// §4.E: "ZX is eligible only if both circuits are
			// ZX-transformable; otherwise disable." When ZX is the only
			// enabled engine this leaves descs empty, which the Manager
			// Facade's no-eligible-tasks fast path turns into
			// NoInformation — the diagnostic here is what makes that
			// outcome explainable instead of a silent empty result.
			logger.ForEngine(enginekind.ZX).Warn().Msg("selector: zx engine cannot transform this circuit pair, disabling it")
		}
	}

	if cfg.Execution.RunSimulation {
		for i := uint32(0); i < simulationTrialCount(c1, cfg.Simulation); i++ {
			descs = append(descs, engine.TaskDescriptor{Key: refengine.SimulationKey, Kind: enginekind.Simulation})
		}
	}

	return descs
}

// simulationTrialCount applies the Execution.maxSims clamp: no unique
// computational-basis state can be sampled twice, so when n <= 63 the
// trial count is capped at 2^n.
func simulationTrialCount(c *circuit.Circuit, sim config.Simulation) uint32 {
	maxSims := sim.MaxSims
	if sim.StateType != config.ComputationalBasis {
		return maxSims
	}
	n := c.NumNonAncillary()
	if n > 63 {
		return maxSims
	}
	capacity := uint64(1) << uint(n)
	if uint64(maxSims) > capacity {
		return uint32(capacity)
	}
	return maxSims
}
