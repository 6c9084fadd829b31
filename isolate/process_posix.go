//go:build !windows

package isolate

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/logger"
)

// terminationGrace is how long TerminateAll waits after SIGTERM before
// escalating to SIGKILL.
const terminationGrace = 50 * time.Millisecond

// processIsolator realizes the spec's POSIX fork-based isolator as a
// re-exec: Go cannot safely fork() a process with live goroutines and
// resume running arbitrary code in the child without an immediate exec, so
// Spawn instead relaunches os.Args[0] with EQCHECK_WORKER=1 and the task's
// construction parameters piped over stdin.
type processIsolator struct {
	mu       sync.Mutex
	children map[uuid.UUID]*exec.Cmd
	outcomes chan *TaskOutcome
}

// NewIsolator returns the POSIX process-based Isolator.
func NewIsolator() Isolator {
	return &processIsolator{
		children: make(map[uuid.UUID]*exec.Cmd),
		outcomes: make(chan *TaskOutcome, 64),
	}
}

func (p *processIsolator) Spawn(id uuid.UUID, desc engine.TaskDescriptor, c1, c2 *circuit.Circuit, cfg config.Config) error {
	data, err := cbor.Marshal(spawnPayload{Descriptor: desc, C1: c1, C2: c2, Config: cfg})
	if err != nil {
		return err
	}

	resultReader, resultWriter, err := os.Pipe()
	if err != nil {
		return err
	}

	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), workerEnvVar+"=1")
	cmd.Stdin = bytes.NewReader(data)
	cmd.ExtraFiles = []*os.File{resultWriter}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		resultReader.Close()
		resultWriter.Close()
		return err
	}
	// the child inherited its own copy of the write end; the parent must
	// close its own or the read end never sees EOF.
	resultWriter.Close()

	p.mu.Lock()
	p.children[id] = cmd
	p.mu.Unlock()

	go p.await(id, cmd, resultReader)
	return nil
}

func (p *processIsolator) await(id uuid.UUID, cmd *exec.Cmd, resultReader *os.File) {
	data, readErr := io.ReadAll(resultReader)
	resultReader.Close()
	waitErr := cmd.Wait()

	out := &TaskOutcome{ID: id}
	switch {
	case readErr != nil || len(data) == 0:
		// The child exited (crashed, was OOM-killed, or was reaped after
		// TerminateAll) without writing a result payload at all: there is
		// no exception to classify, only the fact that it did not
		// complete. None (not Other) is what tells the Parallel Runner to
		// log this and keep waiting on the rest of the portfolio instead
		// of tearing the whole run down.
		out.Completed = false
		out.Exception = engine.None
		if waitErr != nil {
			out.Err = waitErr
		}
	default:
		var payload resultPayload
		if err := cbor.Unmarshal(data, &payload); err != nil {
			// A garbled payload is the same "crashed mid-write" genre as
			// no data at all, not a classified engine exception.
			out.Completed = false
			out.Exception = engine.None
			out.Err = err
		} else {
			out.Verdict = payload.Verdict
			out.Exception = payload.Exception
			out.Completed = payload.Completed
		}
	}

	p.mu.Lock()
	delete(p.children, id)
	p.mu.Unlock()

	p.outcomes <- out
}

func (p *processIsolator) WaitAny(ctx context.Context) (*TaskOutcome, bool) {
	select {
	case out := <-p.outcomes:
		return out, true
	case <-ctx.Done():
		return nil, false
	}
}

func (p *processIsolator) TerminateAll() {
	for _, cmd := range p.snapshot() {
		if cmd.Process == nil {
			continue
		}
		if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
			logger.Component("isolate").Debug().Err(err).Msg("SIGTERM delivery failed")
		}
	}

	deadline := time.Now().Add(terminationGrace)
	for time.Now().Before(deadline) && p.Running() > 0 {
		time.Sleep(time.Millisecond)
	}

	for _, cmd := range p.snapshot() {
		if cmd.Process == nil {
			continue
		}
		_ = cmd.Process.Kill()
	}

	for p.Running() > 0 {
		time.Sleep(time.Millisecond)
	}
}

func (p *processIsolator) snapshot() []*exec.Cmd {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*exec.Cmd, 0, len(p.children))
	for _, cmd := range p.children {
		out = append(out, cmd)
	}
	return out
}

func (p *processIsolator) Running() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.children)
}
