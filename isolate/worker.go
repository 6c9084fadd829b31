package isolate

import (
	"context"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/mqt-go/eqcheck/engine"
)

// RunWorkerIfRequested checks whether this process was re-exec'd as a
// process-isolator worker (EQCHECK_WORKER=1 in its environment) and, if
// so, never returns to the caller: it decodes its task descriptor from
// stdin, reconstructs the task via engine.DefaultRegistry, runs it, writes
// the CBOR result payload to the inherited result pipe (file descriptor 3,
// passed through exec.Cmd.ExtraFiles), and exits the process.
//
// Call this at the very top of main, before flag parsing or any other
// startup work, in any program that constructs a POSIX process Isolator.
// It is a no-op (and returns normally) on the thread isolator build and in
// any process that isn't itself a spawned worker.
func RunWorkerIfRequested() {
	if os.Getenv(workerEnvVar) != "1" {
		return
	}
	os.Exit(runWorker())
}

func runWorker() int {
	resultFile := os.NewFile(3, "eqcheck-worker-result")
	if resultFile == nil {
		return 1
	}
	defer resultFile.Close()

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return 1
	}

	var payload spawnPayload
	if err := cbor.Unmarshal(data, &payload); err != nil {
		writeResult(resultFile, resultPayload{Exception: engine.Other})
		return 1
	}

	task, err := engine.DefaultRegistry.Build(payload.Descriptor.Key, payload.C1, payload.C2, payload.Config, payload.Descriptor.Seed)
	if err != nil {
		writeResult(resultFile, resultPayload{Exception: engine.Classify(err)})
		return 1
	}

	v, runErr := task.Run(context.Background())
	result := resultPayload{Verdict: v, Completed: runErr == nil}
	if runErr != nil {
		result.Exception = engine.Classify(runErr)
	}
	writeResult(resultFile, result)
	if runErr != nil {
		return 1
	}
	return 0
}

func writeResult(w io.Writer, payload resultPayload) {
	data, err := cbor.Marshal(payload)
	if err != nil {
		return
	}
	_, _ = w.Write(data)
}
