package runner

import (
	"context"

	"github.com/google/uuid"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/isolate"
	"github.com/mqt-go/eqcheck/logger"
	"github.com/mqt-go/eqcheck/results"
	"github.com/mqt-go/eqcheck/verdict"
)

// RunParallel implements the Parallel Runner: spawn order (Alternating,
// Construction, ZX, then Simulation trials) up to effective = min(nthreads,
// eligible task count), a WaitAny loop applying the Verdict Lattice in
// completion order, refilling from the remaining queue as slots free up,
// and terminating on a decisive fusion or deadline.
//
// Refill is generalized slightly beyond the spec's simulation-only
// wording: whenever a slot frees up and the pending queue still has any
// descriptor left (not only Simulation trials), the next one is spawned.
// When nthreads is at least the number of non-Simulation tasks (at most
// three) this never differs from spec behavior, since they all fit in the
// initial batch; with a smaller nthreads, including the default (0, which
// counts as 1), it keeps every configured worker slot busy instead of
// leaving it idle.
func RunParallel(ctx context.Context, descs []engine.TaskDescriptor, c1, c2 *circuit.Circuit, cfg config.Config, iso isolate.Isolator, res *results.Results) (verdict.Verdict, error) {
	runCtx := ctx
	cancel := func() {}
	if cfg.Execution.HasTimeout() {
		runCtx, cancel = context.WithTimeout(ctx, cfg.Execution.Timeout())
	}
	defer cancel()
	defer iso.TerminateAll()

	pending := bySpawnOrder(descs)
	ks := newKindSet(descs)
	onlyKind, onlyOne := ks.onlyOne()
	totalSims := countSimulations(descs)
	master := newMasterRand(cfg.Simulation.Seed)

	nthreads := int(cfg.Execution.NThreads)
	if nthreads <= 0 {
		nthreads = 1
	}
	effective := len(pending)
	if nthreads < effective {
		effective = nthreads
	}
	if effective <= 0 {
		return verdict.NoInformation, nil
	}

	spawned := make(map[uuid.UUID]enginekind.Kind)

	spawnNext := func() error {
		if len(pending) == 0 {
			return nil
		}
		d := pending[0]
		pending = pending[1:]
		if d.Kind == enginekind.Simulation {
			d.Seed = master.Uint64()
			res.RecordSimulationStart()
		}
		id := uuid.New()
		if err := iso.Spawn(id, d, c1, c2, cfg); err != nil {
			return err
		}
		spawned[id] = d.Kind
		return nil
	}

	for i := 0; i < effective; i++ {
		if err := spawnNext(); err != nil {
			return verdict.NoInformation, err
		}
	}

	current := verdict.NoInformation
	performedSimulations := 0

	for iso.Running() > 0 {
		outcome, ok := iso.WaitAny(runCtx)
		if !ok {
			return current, nil
		}

		kind := spawned[outcome.ID]
		delete(spawned, outcome.ID)

		if !outcome.Completed {
			if outcome.Exception != engine.None {
				// A genuine engine exception: terminate the rest of the
				// portfolio and re-raise, per §4.G's "on an exception"
				// branch.
				logger.ForEngine(kind).Warn().
					Str("exception", outcome.Exception.String()).
					Msg("runner: task raised an exception, terminating run")
				return current, engine.NewException(outcome.Exception, "engine task failed")
			}
			// A non-completed result with no exception info (the worker
			// crashed, was killed, or its payload could not be
			// reconstructed): log and keep waiting on the rest of the
			// spawned workers, per §4.G's "on a non-completed result"
			// branch — this one engine's loss doesn't abort the others.
			logger.ForEngine(kind).Warn().Msg("runner: task did not complete")
			if len(pending) > 0 && iso.Running() < effective {
				if err := spawnNext(); err != nil {
					return current, err
				}
			}
			continue
		}

		doneSoFar := performedSimulations
		if kind == enginekind.Simulation {
			doneSoFar++
		}
		fctx := verdict.FuseContext{
			AllSimulationsDone: doneSoFar >= totalSims,
			OnlyEnabledKind:    onlyKind,
			OnlyOneKindEnabled: onlyOne,
		}
		action := verdict.Fuse(current, kind, outcome.Verdict, fctx)
		current = action.Next

		if kind == enginekind.Simulation {
			performedSimulations++
			res.RecordSimulationPerformed()
		}

		if action.Decisive {
			return current, nil
		}

		if len(pending) > 0 && iso.Running() < effective {
			if err := spawnNext(); err != nil {
				return current, err
			}
		}
	}

	return current, nil
}
