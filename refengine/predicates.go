package refengine

import "github.com/mqt-go/eqcheck/circuit"

// zxGates is the gate vocabulary the ZX reference stand-in can transform;
// a circuit using anything outside this set is not ZXTransformable.
var zxGates = map[string]bool{
	"x": true, "y": true, "z": true, "h": true,
	"s": true, "sdg": true, "t": true, "tdg": true,
	"cx": true, "cnot": true, "cz": true, "swap": true, "rz": true,
}

// AlternatingCanHandle reports whether the Alternating engine can accept
// the circuit pair: equal qubit counts, small enough for dense simulation,
// and free of mid-circuit dynamic primitives (the alternating matrix
// technique composes unitaries and cannot absorb a non-unitary reset or
// measurement partway through).
func AlternatingCanHandle(c1, c2 *circuit.Circuit) bool {
	if c1.NumQubits() != c2.NumQubits() {
		return false
	}
	if c1.NumQubits() > maxDenseQubits {
		return false
	}
	return !c1.HasDynamicPrimitives() && !c2.HasDynamicPrimitives()
}

// ZXTransformable reports whether both circuits use only the gate
// vocabulary the ZX reference stand-in knows how to turn into a diagram.
func ZXTransformable(c1, c2 *circuit.Circuit) bool {
	if c1.NumQubits() != c2.NumQubits() || c1.NumQubits() > maxDenseQubits {
		return false
	}
	return usesOnly(c1, zxGates) && usesOnly(c2, zxGates)
}

func usesOnly(c *circuit.Circuit, allowed map[string]bool) bool {
	for _, op := range c.Ops {
		if op.Gate == "measure" || op.Gate == "reset" || op.Gate == "barrier" {
			continue
		}
		if !allowed[op.Gate] {
			return false
		}
	}
	return true
}
