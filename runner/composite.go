package runner

import (
	"context"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/results"
	"github.com/mqt-go/eqcheck/selector"
	"github.com/mqt-go/eqcheck/verdict"
)

// sequentialPortfolioKey is the registry key the isolated Sequential
// Runner path spawns through the Task Isolator: a Task that recomputes
// selector.Select(c1, c2, cfg) inside the worker — Select is a pure
// function of its inputs, so a freshly re-exec'd worker reaches the exact
// descriptor multiset the parent would have built — and then runs the
// whole priority-ordered loop down to one verdict.
//
// Only that final verdict survives the isolation boundary: per-engine
// reports and simulation counters from a timeout-wrapped sequential run
// are not available to the caller, the same "boundary loses detail"
// simplification already accepted for the counter-example.
const sequentialPortfolioKey = "sequential-portfolio"

func init() {
	engine.DefaultRegistry.Register(sequentialPortfolioKey, func(c1, c2 *circuit.Circuit, cfg config.Config) (engine.Task, error) {
		return &compositeTask{c1: c1, c2: c2, cfg: cfg}, nil
	})
}

// compositeTask wraps the entire Sequential Runner loop so it can be
// spawned as a single unit through isolate.Isolator, giving the
// timeout-wrapped sequential path the same hard-kill guarantee a single
// engine task gets.
type compositeTask struct {
	c1, c2 *circuit.Circuit
	cfg    config.Config
}

// Kind reports Construction; the tag is never consulted by the caller
// since the composite task's outcome is already a fully fused verdict,
// not a partial one the lattice needs to combine further.
func (t *compositeTask) Kind() enginekind.Kind { return enginekind.Construction }

func (t *compositeTask) Run(ctx context.Context) (verdict.Verdict, error) {
	descs := selector.Select(t.c1, t.c2, t.cfg)
	discard := &results.Results{}
	return runSequentialInProcess(ctx, descs, t.c1, t.c2, t.cfg, discard)
}

func (t *compositeTask) Report() map[string]any {
	return map[string]any{"kind": "sequential_portfolio"}
}
