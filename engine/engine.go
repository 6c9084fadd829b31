// Package engine defines the Engine Task Contract: the small capability
// every equivalence-checking engine (construction/DD, alternating,
// simulation, ZX) implements, independent of its internal proof strategy.
package engine

import (
	"context"
	"fmt"

	"github.com/mqt-go/eqcheck/enginekind"
	"github.com/mqt-go/eqcheck/verdict"
)

// Task is a callable equivalence check. A Task MUST NOT mutate the
// circuits it was constructed from, and MUST be self-contained once
// built: the isolator may reconstruct an equivalent Task in a worker
// process from the same construction parameters (see the isolate
// package), which plays the role the spec's "MAY be moved to another
// worker" requirement plays for a fork-based implementation.
type Task interface {
	Kind() enginekind.Kind
	Run(ctx context.Context) (verdict.Verdict, error)
	// Report returns structured, JSON-marshalable metadata about this
	// task's run, for Results.Checkers.
	Report() map[string]any
}

// Seeder is implemented by Simulation tasks that need to draw from the
// shared random-state generator before a trial. Tasks that don't need it
// simply don't implement the interface; Registry.Build type-asserts for
// it and calls Seed with the descriptor's seed right after constructing
// the task, before handing it back to the runner that will call Run —
// the seed itself is what crosses the isolation boundary (baked into the
// TaskDescriptor the orchestrator built before spawning), since a live
// *StateGenerator cannot follow a task into a re-exec'd worker process.
type Seeder interface {
	Seed(seed uint64)
}

// ExceptionKind classifies a Task failure into one of five buckets that
// survive being carried across an isolation boundary as a single byte.
// None is the zero value: it means "no exception", distinct from a
// worker that failed to complete for no classifiable reason (a crashed
// or killed process that wrote nothing to its result pipe). Collapsing
// that case into Other would make every crash indistinguishable from a
// genuine engine exception, which the Parallel Runner must tell apart
// (log and keep waiting on the others vs. terminate and re-raise).
type ExceptionKind uint8

const (
	None ExceptionKind = iota
	InvalidArgument
	RuntimeError
	LogicError
	Other
)

func (k ExceptionKind) String() string {
	switch k {
	case None:
		return "none"
	case InvalidArgument:
		return "invalid_argument"
	case RuntimeError:
		return "runtime_error"
	case LogicError:
		return "logic_error"
	default:
		return "other"
	}
}

// Exception is the error type a Task returns (or that Classify produces)
// to signal a failure with a known class. Only the class survives an
// isolation boundary; the message does not.
type Exception struct {
	Kind ExceptionKind
	Msg  string
}

func (e *Exception) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// NewException constructs an Exception of the given kind.
func NewException(kind ExceptionKind, format string, args ...any) *Exception {
	return &Exception{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Classify maps an arbitrary error into one of the ExceptionKinds. A nil
// error classifies as None; Classify exists for call sites recovering
// from a panic or catching a generic error from a reference engine,
// mirroring gnark's test.engine recovering an arbitrary panic into a
// typed error.
func Classify(err error) ExceptionKind {
	if err == nil {
		return None
	}
	if exc, ok := err.(*Exception); ok {
		return exc.Kind
	}
	return Other
}
