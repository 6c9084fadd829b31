// Package isolate provides OS-level task isolation so the Parallel Runner
// can enforce a hard timeout on an equivalence-checking engine that never
// returns: engines run inside an isolated worker (a re-exec'd child
// process on POSIX, a cooperative goroutine elsewhere) that can be
// terminated outright without corrupting the orchestrator's own process.
package isolate

import (
	"context"

	"github.com/google/uuid"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/verdict"
)

// workerEnvVar, when set to "1" in a re-exec'd child's environment, tells
// RunWorkerIfRequested to take the worker path instead of continuing into
// the host program's normal startup. Only meaningful on the POSIX process
// isolator build; the thread isolator never sets or checks it for real,
// but RunWorkerIfRequested must still compile and behave as a harmless
// no-op there.
const workerEnvVar = "EQCHECK_WORKER"

// TaskOutcome is what WaitAny reports for one spawned task.
type TaskOutcome struct {
	ID      uuid.UUID
	Verdict verdict.Verdict
	// Exception is engine.None when Completed is true, or when Completed
	// is false for a reason with no classifiable cause (the worker
	// crashed, was killed, or its result payload could not be
	// reconstructed). A non-None Exception alongside Completed == false is
	// a genuine engine exception the runner must terminate the run and
	// re-raise; engine.None alongside Completed == false is a bare
	// "did not complete" the runner should log and keep waiting past.
	Exception engine.ExceptionKind
	Completed bool
	Err       error
}

// Isolator runs engine tasks out of the calling goroutine's process (or
// thread, depending on the build), so they can be terminated
// independently of each other and of the orchestrator itself.
//
// Spawn's task is described indirectly (a registry key plus the circuits
// and config it was selected against) rather than as a live engine.Task
// value: a POSIX implementation must be able to reconstruct it in a freshly
// exec'd child, which cannot receive a Go closure or interface value, only
// serialized data.
type Isolator interface {
	// Spawn starts task id running in isolation. It returns an error only
	// if the worker could not even be started (fork/exec failure); engine
	// failures surface later through WaitAny.
	Spawn(id uuid.UUID, desc engine.TaskDescriptor, c1, c2 *circuit.Circuit, cfg config.Config) error
	// WaitAny blocks until one outstanding task completes or ctx is done.
	// ok is false only on ctx cancellation/deadline, in which case no
	// outcome is returned and every spawned task remains outstanding.
	WaitAny(ctx context.Context) (outcome *TaskOutcome, ok bool)
	// TerminateAll forces every outstanding task to stop and reclaims its
	// resources; Running() is guaranteed to be 0 once it returns.
	TerminateAll()
	// Running reports the number of tasks spawned but not yet reported by
	// WaitAny or reaped by TerminateAll.
	Running() int
}

// spawnPayload is the serialized form of a Spawn call, crossing the
// isolation boundary (a pipe to a re-exec'd child on POSIX; never
// serialized at all for the in-process thread isolator, which just holds
// the Go value directly).
type spawnPayload struct {
	Descriptor engine.TaskDescriptor
	C1, C2     *circuit.Circuit
	Config     config.Config
}

// resultPayload is the minimal outcome that crosses back: a verdict or an
// exception class, never free text or a counter-example, matching the
// spec's fork-based design where only a two-int outcome survives the
// boundary.
type resultPayload struct {
	Verdict   verdict.Verdict
	Exception engine.ExceptionKind
	Completed bool
}
