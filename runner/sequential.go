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

// RunSequential implements the Sequential Runner: the fixed priority
// order (Simulation trials, Alternating, Construction, ZX), running each
// task in-process unless a positive Execution.TimeoutSeconds wraps the
// entire loop in one Task Isolator worker.
func RunSequential(ctx context.Context, descs []engine.TaskDescriptor, c1, c2 *circuit.Circuit, cfg config.Config, res *results.Results) (verdict.Verdict, error) {
	if cfg.Execution.HasTimeout() {
		return runSequentialIsolated(ctx, c1, c2, cfg)
	}
	return runSequentialInProcess(ctx, descs, c1, c2, cfg, res)
}

func runSequentialInProcess(ctx context.Context, descs []engine.TaskDescriptor, c1, c2 *circuit.Circuit, cfg config.Config, res *results.Results) (verdict.Verdict, error) {
	ordered := byPriority(descs)
	ks := newKindSet(descs)
	onlyKind, onlyOne := ks.onlyOne()
	totalSims := countSimulations(descs)
	master := newMasterRand(cfg.Simulation.Seed)

	current := verdict.NoInformation
	performed := 0

	for _, d := range ordered {
		if d.Kind == enginekind.Simulation {
			d.Seed = master.Uint64()
		}

		task, err := engine.DefaultRegistry.Build(d.Key, c1, c2, cfg, d.Seed)
		if err != nil {
			return current, err
		}

		v, err := task.Run(ctx)
		if err != nil {
			return current, err
		}
		res.AddChecker(task.Report())

		if d.Kind == enginekind.Simulation {
			res.RecordSimulationStart()
		}

		fctx := verdict.FuseContext{
			AllSimulationsDone: d.Kind != enginekind.Simulation || performed+1 >= totalSims,
			OnlyEnabledKind:    onlyKind,
			OnlyOneKindEnabled: onlyOne,
		}
		action := verdict.Fuse(current, d.Kind, v, fctx)
		current = action.Next

		if d.Kind == enginekind.Simulation {
			performed++
			res.RecordSimulationPerformed()
			if v == verdict.NotEquivalent {
				return current, nil
			}
		}

		if action.Decisive {
			return current, nil
		}
	}

	return current, nil
}

// runSequentialIsolated wraps the whole priority-ordered loop in one
// isolate.Isolator.Spawn call, realizing §4.F point 2's "entire sequential
// run is itself wrapped in one Task Isolator worker" rule.
func runSequentialIsolated(ctx context.Context, c1, c2 *circuit.Circuit, cfg config.Config) (verdict.Verdict, error) {
	deadline, cancel := context.WithTimeout(ctx, cfg.Execution.Timeout())
	defer cancel()

	iso := isolate.NewIsolator()
	defer iso.TerminateAll()

	id := uuid.New()
	if err := iso.Spawn(id, engine.TaskDescriptor{Key: sequentialPortfolioKey, Kind: enginekind.Construction}, c1, c2, cfg); err != nil {
		return verdict.NoInformation, err
	}

	outcome, ok := iso.WaitAny(deadline)
	if !ok {
		return verdict.NoInformation, nil
	}
	if !outcome.Completed {
		if outcome.Exception != engine.None {
			return verdict.NoInformation, engine.NewException(outcome.Exception, "sequential portfolio run failed")
		}
		// The sole worker crashed with no classifiable exception: there is
		// nothing left to wait on, so this collapses to NoInformation
		// rather than a raised exception, the same as a bare timeout.
		logger.Logger().Warn().Msg("runner: isolated sequential run did not complete")
		return verdict.NoInformation, nil
	}
	return outcome.Verdict, nil
}
