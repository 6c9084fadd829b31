package normalize

import "github.com/mqt-go/eqcheck/circuit"

// reconcileAncillae implements step 3: if large still has d more qubits
// than small after idle-stripping, small gains a fresh ancillary register
// of width d (marked garbage), and the top d logical qubits of large —
// first whichever were already dropped as idle during step 2, then, if
// that falls short of d, the current highest-logical qubits of large
// unconditionally, whether or not they carry real operations — are
// restored to (or converted in) large as ancillae, preserving their
// recorded garbage flags.
//
// The restored qubits are appended as trailing ancillae rather than
// reinserted at their original physical slot: step 2's index-renumbering
// already erased that slot's meaning, and what step 3 actually needs is
// only that the two circuits end up with equal qubit counts and the
// correct garbage bookkeeping, not the original physical placement.
func reconcileAncillae(large, small *circuit.Circuit, removedFromLargeOnly []circuit.Qubit) {
	d := large.NumQubits() - small.NumQubits()
	if d <= 0 {
		return
	}

	for i := 0; i < d; i++ {
		small.AppendAncilla(true)
	}

	restore := append([]circuit.Qubit(nil), removedFromLargeOnly...)
	if len(restore) > d {
		restore = restore[:d]
	}
	// Idle-stripping alone may not have removed enough qubits to close
	// the width gap — the canonical ancilla case, where the extra qubit
	// actually carries operations and so was never idle. Make up the
	// shortfall by removing large's current highest logical qubit as
	// many more times as needed: that qubit is always the circuit's top
	// index, so removing it never shifts any other qubit's index.
	for len(restore) < d {
		top := large.NumQubits() - 1
		restore = append(restore, large.Qubits[top])
		large.RemoveLogicalQubit(top)
	}

	for i := len(restore) - 1; i >= 0; i-- {
		large.AppendAncilla(restore[i].IsGarbage)
	}
}
