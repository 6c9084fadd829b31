package refengine

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/mqt-go/eqcheck/config"
)

// StateGenerator draws trial states for the Simulation reference engine. It
// is the one piece of shared, mutable state the spec requires be advanced
// only by the scheduler (never by a worker after a task has been spawned);
// Seed/Next are safe for concurrent use via an internal mutex so a thread
// isolator sampling it just before Spawn does not race a previous task's
// tail end.
type StateGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStateGenerator returns a generator seeded deterministically from seed.
func NewStateGenerator(seed uint64) *StateGenerator {
	return &StateGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Seed reseeds the generator, matching the engine.Seeder contract.
func (g *StateGenerator) Seed(seed uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Next draws a trial statevector over n qubits from the given distribution.
func (g *StateGenerator) Next(stateType config.StateType, n int) []complex128 {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch stateType {
	case config.Random1QBasis:
		return g.random1QBasisState(n)
	case config.Stabilizer:
		return g.stabilizerLikeState(n)
	default:
		return g.computationalBasisState(n)
	}
}

func (g *StateGenerator) computationalBasisState(n int) []complex128 {
	dim := 1 << uint(n)
	v := make([]complex128, dim)
	v[g.rng.IntN(dim)] = 1
	return v
}

// random1QBasisState starts from a random computational basis state and
// rotates each qubit independently by a random angle around a random axis,
// the dense-simulation stand-in for "each qubit prepared in an
// independently random single-qubit basis".
func (g *StateGenerator) random1QBasisState(n int) []complex128 {
	state := g.computationalBasisState(n)
	for q := 0; q < n; q++ {
		axis := [...]mat2{pauliX, pauliY, pauliZ}[g.rng.IntN(3)]
		theta := g.rng.Float64() * 2 * math.Pi
		applySingle(state, n, q, rotation(axis, theta))
	}
	return state
}

// stabilizerLikeState starts from a random computational basis state and
// applies a random layer of Clifford gates (H, S, CNOT), a dense-simulation
// stand-in for a random stabilizer state without a full tableau simulator.
func (g *StateGenerator) stabilizerLikeState(n int) []complex128 {
	state := g.computationalBasisState(n)
	for q := 0; q < n; q++ {
		switch g.rng.IntN(2) {
		case 0:
			applySingle(state, n, q, hadamard)
		case 1:
			applySingle(state, n, q, phase90)
		}
	}
	if n > 1 {
		for q := 0; q < n-1; q++ {
			if g.rng.IntN(2) == 0 {
				applyControlled(state, n, q, q+1, pauliX)
			}
		}
	}
	return state
}
