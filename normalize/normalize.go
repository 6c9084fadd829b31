// Package normalize implements the Circuit Normalizer: the deterministic
// pass applied once to a circuit pair at manager construction that strips
// idle qubits, reconciles qubit-count mismatches as ancillae, and drives
// the configured optimization passes.
package normalize

import (
	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/logger"
)

// Normalize mutates c1 and c2 in place per the fixed five-step sequence:
// optimization passes (non-symbolic circuits only), idle-qubit stripping,
// ancilla reconciliation, the setAllAncillaeGarbage sweep, and a final
// non-fatal qubit-count-mismatch warning.
func Normalize(c1, c2 *circuit.Circuit, opt config.Optimizations, exec config.Execution) error {
	symbolic := c1.HasSymbolicParams || c2.HasSymbolicParams
	if !symbolic {
		if err := runOptimizationPasses(c1, opt); err != nil {
			return err
		}
		if err := runOptimizationPasses(c2, opt); err != nil {
			return err
		}
	}

	large, small := c1, c2
	if small.NumQubits() > large.NumQubits() {
		large, small = small, large
	}
	removedFromLargeOnly := stripIdleQubits(large, small)
	reconcileAncillae(large, small, removedFromLargeOnly)

	if exec.SetAllAncillaeGarbage {
		c1.SetAllAncillaeGarbage()
		c2.SetAllAncillaeGarbage()
	}

	if c1.NumNonAncillary() != c2.NumNonAncillary() {
		logger.Component("normalize").Warn().
			Int("c1_non_ancillary", c1.NumNonAncillary()).
			Int("c2_non_ancillary", c2.NumNonAncillary()).
			Msg("circuits still differ in non-ancillary qubit count after reconciliation")
	}

	return nil
}
