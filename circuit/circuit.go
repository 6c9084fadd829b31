// Package circuit provides the concrete circuit representation the
// Normalizer, Selector, and reference engines operate on.
//
// The distilled specification treats the quantum circuit itself as an
// external type owned by another collaborator (the optimization passes,
// decision-diagram engine, and ZX engine it is handed to live outside this
// repository's scope). A complete, buildable repository still needs a
// concrete type for that collaborator to have hypothetically produced, so
// this package supplies a minimal one: an ordered operation list over a
// set of qubits, plus the two physical/logical bijections the Normalizer
// reads and mutates.
package circuit

// Operation is a single gate application. It intentionally carries just
// enough information for fusion, SWAP-pattern matching, and simulation by
// the reference engines — not the full instruction set a production
// quantum IR would need.
type Operation struct {
	Gate     string
	Controls []int
	Targets  []int
	Params   []float64
}

// Clone returns a deep copy of op.
func (op Operation) Clone() Operation {
	out := Operation{Gate: op.Gate}
	if op.Controls != nil {
		out.Controls = append([]int(nil), op.Controls...)
	}
	if op.Targets != nil {
		out.Targets = append([]int(nil), op.Targets...)
	}
	if op.Params != nil {
		out.Params = append([]float64(nil), op.Params...)
	}
	return out
}

// Qubit carries the per-qubit flags the Normalizer reconciles.
type Qubit struct {
	IsAncilla bool
	IsGarbage bool
}

// Layout is a physical-to-logical qubit bijection: Layout[physical] ==
// logical. A value of -1 marks a physical position with no mapped logical
// qubit (used transiently during normalization).
type Layout []int

// Clone returns a copy of l.
func (l Layout) Clone() Layout {
	return append(Layout(nil), l...)
}

// IndexOf returns the physical index mapped to logical qubit q, or -1 if
// none exists.
func (l Layout) IndexOf(q int) int {
	for physical, logical := range l {
		if logical == q {
			return physical
		}
	}
	return -1
}

// Circuit is the concrete representation this repository normalizes,
// selects engines for, and (via the reference engines) checks.
type Circuit struct {
	Qubits            []Qubit
	Ops               []Operation
	InitialLayout     Layout
	OutputPermutation Layout
	// HasSymbolicParams marks circuits containing symbolic (parameterized,
	// not-yet-instantiated) gate parameters; the manager takes the
	// symbolic path described in spec §4.H when either circuit sets this.
	HasSymbolicParams bool
}

// NumQubits returns the number of logical qubits the circuit declares.
func (c *Circuit) NumQubits() int {
	return len(c.Qubits)
}

// NumNonAncillary returns the number of qubits not marked ancillary.
func (c *Circuit) NumNonAncillary() int {
	n := 0
	for _, q := range c.Qubits {
		if !q.IsAncilla {
			n++
		}
	}
	return n
}

// Empty reports whether the circuit has no operations at all.
func (c *Circuit) Empty() bool {
	return len(c.Ops) == 0
}

// Clone returns a deep copy of c, so engines can be handed a circuit
// without risking a mutation of the manager's normalized originals.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{
		Qubits:            append([]Qubit(nil), c.Qubits...),
		InitialLayout:     c.InitialLayout.Clone(),
		OutputPermutation: c.OutputPermutation.Clone(),
		HasSymbolicParams: c.HasSymbolicParams,
	}
	out.Ops = make([]Operation, len(c.Ops))
	for i, op := range c.Ops {
		out.Ops[i] = op.Clone()
	}
	return out
}

// IdlePhysical reports, for each physical qubit, whether it has no
// operation referencing its currently mapped logical qubit.
func (c *Circuit) IdlePhysical() []bool {
	idle := make([]bool, len(c.InitialLayout))
	used := make(map[int]bool, len(c.Qubits))
	for _, op := range c.Ops {
		for _, q := range op.Controls {
			used[q] = true
		}
		for _, q := range op.Targets {
			used[q] = true
		}
	}
	for physical, logical := range c.InitialLayout {
		idle[physical] = !used[logical]
	}
	return idle
}

// RemoveLogicalQubit deletes logical qubit q from the circuit: its Qubit
// record is dropped, every operation reference to it is expected to
// already be absent (callers only remove idle qubits), its entries are
// removed from both layouts, and every logical index strictly above q is
// decremented by one everywhere it appears, preserving the relative order
// of remaining qubits the way Normalizer step 2 requires.
func (c *Circuit) RemoveLogicalQubit(q int) {
	c.Qubits = append(c.Qubits[:q], c.Qubits[q+1:]...)

	c.InitialLayout = removeFromLayout(c.InitialLayout, q)
	c.OutputPermutation = removeFromLayout(c.OutputPermutation, q)

	for i := range c.Ops {
		c.Ops[i].Controls = shiftDown(c.Ops[i].Controls, q)
		c.Ops[i].Targets = shiftDown(c.Ops[i].Targets, q)
	}
}

func removeFromLayout(l Layout, q int) Layout {
	out := make(Layout, 0, len(l))
	for _, logical := range l {
		if logical == q {
			continue
		}
		if logical > q {
			logical--
		}
		out = append(out, logical)
	}
	return out
}

func shiftDown(indices []int, removed int) []int {
	if indices == nil {
		return nil
	}
	out := make([]int, len(indices))
	for i, idx := range indices {
		if idx > removed {
			out[i] = idx - 1
		} else {
			out[i] = idx
		}
	}
	return out
}

// AppendAncilla adds a fresh ancillary qubit, optionally marked garbage,
// returning its new logical index. Both layouts are extended with an
// identity mapping at the new physical position, matching the
// Normalizer's "add an ancillary register of width d" step.
func (c *Circuit) AppendAncilla(garbage bool) int {
	logical := len(c.Qubits)
	c.Qubits = append(c.Qubits, Qubit{IsAncilla: true, IsGarbage: garbage})
	c.InitialLayout = append(c.InitialLayout, logical)
	c.OutputPermutation = append(c.OutputPermutation, logical)
	return logical
}

// SetAllAncillaeGarbage marks every ancillary qubit as garbage, for
// Execution.SetAllAncillaeGarbage (Normalizer step 4).
func (c *Circuit) SetAllAncillaeGarbage() {
	for i := range c.Qubits {
		if c.Qubits[i].IsAncilla {
			c.Qubits[i].IsGarbage = true
		}
	}
}

// HasGarbage reports whether any qubit is marked garbage.
func (c *Circuit) HasGarbage() bool {
	for _, q := range c.Qubits {
		if q.IsGarbage {
			return true
		}
	}
	return false
}

// HasDynamicPrimitives reports whether the circuit contains mid-circuit
// non-unitary primitives (reset or measurement not at the very end).
func (c *Circuit) HasDynamicPrimitives() bool {
	for i, op := range c.Ops {
		if op.Gate != "reset" && op.Gate != "measure" {
			continue
		}
		// a measurement as the final operation on every qubit is a normal
		// end-of-circuit measurement, not a dynamic primitive.
		if op.Gate == "measure" && isFinalMeasurement(c.Ops, i) {
			continue
		}
		return true
	}
	return false
}

func isFinalMeasurement(ops []Operation, i int) bool {
	targets := make(map[int]bool)
	for _, t := range ops[i].Targets {
		targets[t] = true
	}
	for j := i + 1; j < len(ops); j++ {
		for _, t := range ops[j].Targets {
			if targets[t] {
				return false
			}
		}
		for _, t := range ops[j].Controls {
			if targets[t] {
				return false
			}
		}
	}
	return true
}
