// Package refengine provides reference-grade, dense-statevector stand-ins
// for the four equivalence-checking engines the orchestrator schedules:
// Construction (decision-diagram equivalent), Alternating, ZX-calculus, and
// Simulation. None of these are the real proof-strategy implementations —
// there is no decision diagram, no ZX diagram rewriting, no stabilizer
// tableau — they are small, exact (or statistically exact, for Simulation)
// computations over a dense complex128 statevector, built to exercise the
// Engine Task Contract, Selector, Runners, and Verdict Lattice end-to-end
// the way gnark's test.engine exercises frontend.API for fast validation
// before an expensive backend run.
//
// Dense simulation bounds every engine here to circuits small enough to
// build a full 2^n-by-2^n (Construction, Alternating, ZX) or 2^n-entry
// (Simulation) statevector in memory. maxDenseQubits is that bound; a
// circuit exceeding it is reported as out of scope rather than attempted,
// via a NoInformation verdict and a Report note — this is a deliberate
// scope limit of the stand-in, not a behavior the orchestrator's contract
// depends on.
package refengine

// maxDenseQubits is the largest qubit count a reference engine will
// attempt a dense simulation for.
const maxDenseQubits = 12
