// Package results defines the Results wire type the Manager Facade
// returns and the runners populate, kept in its own package so both the
// root eqcheck package (the public API) and the runner package (which
// fills Results in while a run is in flight) can depend on it without an
// import cycle.
package results

import "github.com/mqt-go/eqcheck/verdict"

// SimulationStats reports the Simulation engine's trial bookkeeping. It
// is present in the JSON wire shape iff Started > 0.
type SimulationStats struct {
	Started   uint64 `json:"started"`
	Performed uint64 `json:"performed"`
}

// ParameterizedStats reports how many symbolic-parameter instantiations
// were performed on the parameterized path.
type ParameterizedStats struct {
	PerformedInstantiations uint64 `json:"performed_instantiations"`
}

// Results is the exact JSON shape documented in the external-interfaces
// section: preprocessing/check timings, the fused equivalence verdict,
// optional simulation counters, parameterized-path counters, and the
// engines' structured reports. Checkers is filled only by the in-process
// Sequential Runner (no timeout set); runs through an isolator, including
// every Parallel Runner run, leave it empty.
type Results struct {
	PreprocessingTime float64            `json:"preprocessing_time"`
	CheckTime         float64            `json:"check_time"`
	Equivalence       verdict.Verdict    `json:"equivalence"`
	Simulations       *SimulationStats   `json:"simulations,omitempty"`
	Parameterized     ParameterizedStats `json:"parameterized"`
	Checkers          []map[string]any   `json:"checkers"`

	// CounterExample is never populated: no runner path currently
	// constructs one, and it would not survive an isolator boundary if it
	// did (only a verdict and an exception class cross that boundary). The
	// field stays reserved, outside the documented JSON wire shape, for a
	// future in-process Sequential Runner path that extracts one from a
	// NotEquivalent checker report.
	CounterExample any `json:"-"`
}

// AddChecker appends one engine's structured report to Checkers.
func (r *Results) AddChecker(report map[string]any) {
	r.Checkers = append(r.Checkers, report)
}

// RecordSimulationStart ensures Simulations is present (lazily, since it is
// only emitted when at least one trial started) and bumps the started
// counter.
func (r *Results) RecordSimulationStart() {
	if r.Simulations == nil {
		r.Simulations = &SimulationStats{}
	}
	r.Simulations.Started++
}

// RecordSimulationPerformed bumps the performed counter; it is only
// meaningful after RecordSimulationStart has run at least once.
func (r *Results) RecordSimulationPerformed() {
	if r.Simulations == nil {
		r.Simulations = &SimulationStats{}
	}
	r.Simulations.Performed++
}
