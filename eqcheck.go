// Package eqcheck is the Portfolio Orchestrator: the Manager Facade that
// owns a circuit pair, normalizes it, selects eligible equivalence-
// checking engines, runs them sequentially or in parallel under a hard
// timeout, and fuses their partial verdicts into one final answer.
package eqcheck

import (
	"context"
	"time"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/isolate"
	"github.com/mqt-go/eqcheck/logger"
	"github.com/mqt-go/eqcheck/normalize"
	"github.com/mqt-go/eqcheck/results"
	"github.com/mqt-go/eqcheck/runner"
	"github.com/mqt-go/eqcheck/selector"
	"github.com/mqt-go/eqcheck/verdict"
)

// Config is the flat, six-group configuration record a Manager is driven
// by; re-exported here so callers of this package never need to import
// the config package directly for the common case.
type Config = config.Config

// Option mutates a Config being assembled.
type Option = config.Option

// Results is the JSON-shaped outcome of a Run.
type Results = results.Results

// Manager owns a normalized circuit pair and the configuration that
// governs how it is checked for equivalence.
type Manager struct {
	c1, c2 *circuit.Circuit
	cfg    config.Config

	preprocessingTime time.Duration
}

// New constructs a Manager for the given circuit pair: applies opts to
// config.Default(), normalizes the pair (unless either carries symbolic
// parameters, in which case only the symbolic flag is recorded), and
// records preprocessing time.
func New(c1, c2 *circuit.Circuit, opts ...Option) (*Manager, error) {
	cfg, err := config.Apply(config.Default(), opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	nc1, nc2 := c1.Clone(), c2.Clone()
	symbolic := nc1.HasSymbolicParams || nc2.HasSymbolicParams
	if !symbolic {
		if err := normalize.Normalize(nc1, nc2, cfg.Optimizations, cfg.Execution); err != nil {
			return nil, err
		}
	}

	m := &Manager{
		c1:                nc1,
		c2:                nc2,
		cfg:               cfg,
		preprocessingTime: time.Since(start),
	}
	return m, nil
}

// DisableAllCheckers turns off all four engines.
func (m *Manager) DisableAllCheckers() {
	m.cfg.Execution.RunConstruction = false
	m.cfg.Execution.RunSimulation = false
	m.cfg.Execution.RunAlternating = false
	m.cfg.Execution.RunZX = false
}

// SetApplicationScheme sets the same per-checker application scheme on
// all three checker slots.
func (m *Manager) SetApplicationScheme(scheme config.ApplicationScheme) {
	m.cfg.Application.ConstructionScheme = scheme
	m.cfg.Application.SimulationScheme = scheme
	m.cfg.Application.AlternatingScheme = scheme
}

// SetGateCostProfile forces the GateCost application scheme on all three
// checker slots and attaches profile.
func (m *Manager) SetGateCostProfile(profile config.CostProfile) {
	m.cfg.Application.ConstructionScheme = config.GateCost
	m.cfg.Application.SimulationScheme = config.GateCost
	m.cfg.Application.AlternatingScheme = config.GateCost
	m.cfg.Application.CostProfile = &profile
}

// anyEngineEnabled reports whether at least one of the four engines is
// switched on in the current configuration.
func (m *Manager) anyEngineEnabled() bool {
	e := m.cfg.Execution
	return e.RunConstruction || e.RunSimulation || e.RunAlternating || e.RunZX
}

// Run executes the orchestrated equivalence check: the empty-circuits and
// no-engines-enabled fast paths, then dispatch to the Sequential or
// Parallel Runner (or the symbolic path), folding the result into a
// Results value.
func (m *Manager) Run(ctx context.Context) (Results, error) {
	start := time.Now()
	res := Results{PreprocessingTime: m.preprocessingTime.Seconds()}

	final, err := m.run(ctx, &res)
	res.CheckTime = time.Since(start).Seconds()
	if err != nil {
		return res, err
	}
	res.Equivalence = final

	if !m.cfg.Functionality.CheckPartialEquivalence &&
		(m.c1.HasGarbage() || m.c2.HasGarbage()) &&
		final == verdict.NotEquivalent {
		logger.Component("eqcheck").Warn().Msg("garbage qubits present and checkPartialEquivalence is disabled; NotEquivalent may reflect discarded-output differences only")
	}

	return res, nil
}

// run dispatches per §4.H: it first takes the no-engines-enabled and
// empty-circuits fast paths itself. selector.Select already implements the
// symbolic-path branch (a single ZX task, or nothing), so the dispatch
// below naturally takes the Sequential Runner for a symbolic pair without
// a separate code path: a one-task descriptor list always satisfies the
// "only_one_task" condition.
func (m *Manager) run(ctx context.Context, res *Results) (verdict.Verdict, error) {
	if !m.anyEngineEnabled() {
		return verdict.NoInformation, nil
	}
	if m.c1.Empty() && m.c2.Empty() {
		return verdict.Equivalent, nil
	}

	descs := selector.Select(m.c1, m.c2, m.cfg)
	if len(descs) == 0 {
		return verdict.NoInformation, nil
	}

	onlyOneTask := len(descs) == 1
	if !m.cfg.Execution.Parallel || m.cfg.Execution.NThreads <= 1 || onlyOneTask {
		return runner.RunSequential(ctx, descs, m.c1, m.c2, m.cfg, res)
	}

	iso := isolate.NewIsolator()
	return runner.RunParallel(ctx, descs, m.c1, m.c2, m.cfg, iso, res)
}
