//go:build windows

package isolate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
)

// workerState tracks one task running as a goroutine instead of a
// separate process. Unlike the process isolator's SIGKILL, a goroutine
// that never checks its own context has no way to be forcibly reclaimed;
// TerminateAll's cancellation is cooperative, documented best-effort
// isolation rather than a hard guarantee.
type workerState struct {
	done   chan struct{}
	cancel context.CancelFunc
}

// threadIsolator is the non-POSIX fallback Isolator: it runs every task as
// a goroutine in the host process rather than a re-exec'd child, since
// Windows has no cheap equivalent of fork() for this spec's purposes.
// Termination is cooperative: TerminateAll cancels each task's context and
// waits up to 50ms, but a task that never observes ctx.Done() cannot be
// killed outright; it stops being counted by Running all the same.
type threadIsolator struct {
	mu       sync.Mutex
	workers  map[uuid.UUID]*workerState
	outcomes chan *TaskOutcome
}

// NewIsolator returns the goroutine-based fallback Isolator.
func NewIsolator() Isolator {
	return &threadIsolator{
		workers:  make(map[uuid.UUID]*workerState),
		outcomes: make(chan *TaskOutcome, 64),
	}
}

func (t *threadIsolator) Spawn(id uuid.UUID, desc engine.TaskDescriptor, c1, c2 *circuit.Circuit, cfg config.Config) error {
	task, err := engine.DefaultRegistry.Build(desc.Key, c1, c2, cfg, desc.Seed)
	if err != nil {
		t.outcomes <- &TaskOutcome{ID: id, Exception: engine.Classify(err), Err: err}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &workerState{done: make(chan struct{}), cancel: cancel}

	t.mu.Lock()
	t.workers[id] = w
	t.mu.Unlock()

	go t.run(id, w, task, ctx)
	return nil
}

func (t *threadIsolator) run(id uuid.UUID, w *workerState, task engine.Task, ctx context.Context) {
	v, err := task.Run(ctx)
	out := &TaskOutcome{ID: id, Verdict: v, Completed: err == nil}
	if err != nil {
		out.Exception = engine.Classify(err)
	}
	close(w.done)

	t.mu.Lock()
	delete(t.workers, id)
	t.mu.Unlock()

	t.outcomes <- out
}

func (t *threadIsolator) WaitAny(ctx context.Context) (*TaskOutcome, bool) {
	select {
	case out := <-t.outcomes:
		return out, true
	case <-ctx.Done():
		return nil, false
	}
}

func (t *threadIsolator) TerminateAll() {
	t.mu.Lock()
	workers := make([]*workerState, 0, len(t.workers))
	ids := make([]uuid.UUID, 0, len(t.workers))
	for id, w := range t.workers {
		workers = append(workers, w)
		ids = append(ids, id)
	}
	t.mu.Unlock()

	for _, w := range workers {
		w.cancel()
	}

	grace, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var g errgroup.Group
	for _, w := range workers {
		w := w
		g.Go(func() error {
			select {
			case <-w.done:
			case <-grace.Done():
			}
			return nil
		})
	}
	_ = g.Wait()

	t.mu.Lock()
	for _, id := range ids {
		delete(t.workers, id)
	}
	t.mu.Unlock()
}

func (t *threadIsolator) Running() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.workers)
}
