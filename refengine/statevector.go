package refengine

import (
	"math"
	"math/cmplx"

	"github.com/mqt-go/eqcheck/circuit"
)

// identityUnitary returns the 2^n x 2^n identity, as columns.
func identityUnitary(n int) [][]complex128 {
	dim := 1 << uint(n)
	cols := make([][]complex128, dim)
	for i := range cols {
		cols[i] = make([]complex128, dim)
		cols[i][i] = 1
	}
	return cols
}

// unitaryOf builds the dense unitary matrix (as a slice of column vectors)
// a circuit's operation sequence realizes over its logical qubits, by
// applying every operation to each computational basis column in turn.
func unitaryOf(c *circuit.Circuit) ([][]complex128, error) {
	n := c.NumQubits()
	cols := identityUnitary(n)
	for i, col := range cols {
		for _, op := range c.Ops {
			if err := applyOp(col, n, op); err != nil {
				return nil, err
			}
		}
		cols[i] = col
	}
	return cols, nil
}

// applyOp mutates state in place, applying op over n qubits.
func applyOp(state []complex128, n int, op circuit.Operation) error {
	switch op.Gate {
	case "measure", "reset", "barrier":
		return nil
	case "x":
		applySingle(state, n, op.Targets[0], pauliX)
	case "y":
		applySingle(state, n, op.Targets[0], pauliY)
	case "z":
		applySingle(state, n, op.Targets[0], pauliZ)
	case "h":
		applySingle(state, n, op.Targets[0], hadamard)
	case "s":
		applySingle(state, n, op.Targets[0], phase90)
	case "sdg":
		applySingle(state, n, op.Targets[0], phase90Dag)
	case "t":
		applySingle(state, n, op.Targets[0], phase45)
	case "tdg":
		applySingle(state, n, op.Targets[0], phase45Dag)
	case "rx":
		applySingle(state, n, op.Targets[0], rotation(pauliX, angleOf(op)))
	case "ry":
		applySingle(state, n, op.Targets[0], rotation(pauliY, angleOf(op)))
	case "rz":
		applySingle(state, n, op.Targets[0], rotation(pauliZ, angleOf(op)))
	case "cx", "cnot":
		applyControlled(state, n, op.Controls[0], op.Targets[0], pauliX)
	case "cz":
		applyControlled(state, n, op.Controls[0], op.Targets[0], pauliZ)
	case "swap":
		applySwap(state, n, op.Targets[0], op.Targets[1])
	default:
		return &unsupportedGateError{gate: op.Gate}
	}
	return nil
}

type unsupportedGateError struct{ gate string }

func (e *unsupportedGateError) Error() string { return "refengine: unsupported gate " + e.gate }

func angleOf(op circuit.Operation) float64 {
	if len(op.Params) == 0 {
		return 0
	}
	return op.Params[0]
}

type mat2 [2][2]complex128

var (
	pauliX     = mat2{{0, 1}, {1, 0}}
	pauliY     = mat2{{0, -1i}, {1i, 0}}
	pauliZ     = mat2{{1, 0}, {0, -1}}
	hadamard   = mat2{{1 / math.Sqrt2, 1 / math.Sqrt2}, {1 / math.Sqrt2, -1 / math.Sqrt2}}
	phase90    = mat2{{1, 0}, {0, 1i}}
	phase90Dag = mat2{{1, 0}, {0, -1i}}
	phase45    = mat2{{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}}
	phase45Dag = mat2{{1, 0}, {0, cmplx.Exp(-1i * math.Pi / 4)}}
)

// rotation returns exp(-i*theta/2*pauli), a standard single-qubit rotation.
func rotation(pauli mat2, theta float64) mat2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	var out mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			id := complex128(0)
			if i == j {
				id = 1
			}
			out[i][j] = c*id - 1i*s*pauli[i][j]
		}
	}
	return out
}

func applySingle(state []complex128, n, target int, m mat2) {
	bit := uint(n - 1 - target)
	dim := len(state)
	for i := 0; i < dim; i++ {
		if i&(1<<bit) != 0 {
			continue
		}
		j := i | (1 << bit)
		a, b := state[i], state[j]
		state[i] = m[0][0]*a + m[0][1]*b
		state[j] = m[1][0]*a + m[1][1]*b
	}
}

func applyControlled(state []complex128, n, control, target int, m mat2) {
	cbit := uint(n - 1 - control)
	tbit := uint(n - 1 - target)
	dim := len(state)
	for i := 0; i < dim; i++ {
		if i&(1<<cbit) == 0 {
			continue
		}
		if i&(1<<tbit) != 0 {
			continue
		}
		j := i | (1 << tbit)
		a, b := state[i], state[j]
		state[i] = m[0][0]*a + m[0][1]*b
		state[j] = m[1][0]*a + m[1][1]*b
	}
}

func applySwap(state []complex128, n, q1, q2 int) {
	b1 := uint(n - 1 - q1)
	b2 := uint(n - 1 - q2)
	dim := len(state)
	for i := 0; i < dim; i++ {
		bit1 := i&(1<<b1) != 0
		bit2 := i&(1<<b2) != 0
		if bit1 == bit2 {
			continue
		}
		j := i ^ (1 << b1) ^ (1 << b2)
		if j > i {
			state[i], state[j] = state[j], state[i]
		}
	}
}

// adjoint returns the conjugate transpose of a matrix given as columns.
func adjoint(cols [][]complex128) [][]complex128 {
	dim := len(cols)
	out := make([][]complex128, dim)
	for i := range out {
		out[i] = make([]complex128, dim)
	}
	for c := range cols {
		for r := range cols[c] {
			out[r][c] = cmplx.Conj(cols[c][r])
		}
	}
	return out
}

// applyMatrix returns m*v for m given as columns.
func applyMatrix(m [][]complex128, v []complex128) []complex128 {
	dim := len(v)
	out := make([]complex128, dim)
	for k, coeff := range v {
		if coeff == 0 {
			continue
		}
		col := m[k]
		for r := 0; r < dim; r++ {
			out[r] += coeff * col[r]
		}
	}
	return out
}

// compose returns a*b (matrix product), both given as columns.
func compose(a, b [][]complex128) [][]complex128 {
	out := make([][]complex128, len(b))
	for j, col := range b {
		out[j] = applyMatrix(a, col)
	}
	return out
}

// fidelity returns |<a|b>|^2 for two equal-length statevectors.
func fidelity(a, b []complex128) float64 {
	var inner complex128
	for i := range a {
		inner += cmplx.Conj(a[i]) * b[i]
	}
	return real(inner)*real(inner) + imag(inner)*imag(inner)
}

// matricesEqual reports exact and global-phase equality for two unitaries
// given as column slices, within tol.
func matricesEqual(a, b [][]complex128, tol float64) (equal, sameUpToPhase bool) {
	if len(a) != len(b) {
		return false, false
	}
	equal = true
	phaseOK := true
	var phase complex128
	havePhase := false
	for c := range a {
		for r := range a[c] {
			d := a[c][r] - b[c][r]
			if cmplx.Abs(d) > tol {
				equal = false
			}
			if cmplx.Abs(a[c][r]) > tol {
				p := b[c][r] / a[c][r]
				if !havePhase {
					phase = p
					havePhase = true
				} else if cmplx.Abs(p-phase) > tol {
					phaseOK = false
				}
			} else if cmplx.Abs(b[c][r]) > tol {
				phaseOK = false
			}
		}
	}
	sameUpToPhase = phaseOK && havePhase && math.Abs(cmplx.Abs(phase)-1) <= tol
	return
}
