package normalize

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/mqt-go/eqcheck/circuit"
)

// stripIdleQubits implements step 2 of the Normalizer: walking the larger
// circuit's physical qubits from the highest index downward, it drops
// every idle, safely-removable qubit — from large alone if the logical
// qubit has no counterpart physical slot in small, from both circuits if
// the same physical slot is idle and removable in small too. It returns,
// in removal order (highest physical index first), the Qubit records dropped
// from large alone, so step 3 can restore the right number of them as
// ancillae.
func stripIdleQubits(large, small *circuit.Circuit) []circuit.Qubit {
	var removedFromLargeOnly []circuit.Qubit

	idleLarge := idleBitset(large)
	idleSmall := idleBitset(small)

	for physical := large.NumQubits() - 1; physical >= 0; physical-- {
		if physical >= len(large.InitialLayout) || !idleLarge.Test(uint(physical)) {
			continue
		}
		logical := large.InitialLayout[physical]
		if !safelyRemovable(large, logical) {
			continue
		}

		if physical >= small.NumQubits() {
			removedFromLargeOnly = append(removedFromLargeOnly, large.Qubits[logical])
			large.RemoveLogicalQubit(logical)
			idleLarge = idleBitset(large)
			continue
		}

		smallLogical := small.InitialLayout[physical]
		if idleSmall.Test(uint(physical)) && safelyRemovable(small, smallLogical) {
			large.RemoveLogicalQubit(logical)
			small.RemoveLogicalQubit(smallLogical)
			idleLarge = idleBitset(large)
			idleSmall = idleBitset(small)
		}
	}

	return removedFromLargeOnly
}

// safelyRemovable protects the user-declared output permutation: logical
// is removable only if it either never appears in the output permutation
// or still maps to its own physical slot there (hasn't been routed
// elsewhere by the circuit).
func safelyRemovable(c *circuit.Circuit, logical int) bool {
	physical := c.InitialLayout.IndexOf(logical)
	if physical < 0 || physical >= len(c.OutputPermutation) {
		return true
	}
	return c.OutputPermutation[physical] == logical
}

// idleBitset marks, per physical qubit, whether the logical qubit
// currently mapped there has no operation referencing it.
func idleBitset(c *circuit.Circuit) *bitset.BitSet {
	n := uint(c.NumQubits())
	used := bitset.New(n)
	for _, op := range c.Ops {
		for _, q := range op.Controls {
			if q >= 0 && uint(q) < n {
				used.Set(uint(q))
			}
		}
		for _, q := range op.Targets {
			if q >= 0 && uint(q) < n {
				used.Set(uint(q))
			}
		}
	}

	idle := bitset.New(uint(len(c.InitialLayout)))
	for physical, logical := range c.InitialLayout {
		if logical < 0 || uint(logical) >= n {
			continue
		}
		if !used.Test(uint(logical)) {
			idle.Set(uint(physical))
		}
	}
	return idle
}
