// Package logger provides the diagnostic stream §7 of the specification
// calls for: a place non-fatal conditions (Selector fallback warnings,
// Normalizer advisories, a crashed worker the Parallel Runner decided not
// to abort the run over) get reported without an error return.
//
// The root logger uses github.com/rs/zerolog with a console writer by
// default. Because a portfolio run interleaves diagnostics from several
// independent components and, in parallel mode, several engines running
// concurrently, plain unstructured lines aren't enough to tell them apart
// after the fact — Component and ForEngine hand out sub-loggers that tag
// every line they emit with where it came from.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mqt-go/eqcheck/enginekind"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows an eqcheck host to override the global logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the root logger, for diagnostics that belong to the
// Manager Facade itself rather than to one of its components.
func Logger() zerolog.Logger {
	return logger
}

// Component returns a sub-logger tagging every line it emits with the
// orchestrator component that produced it (e.g. "selector", "normalize",
// "isolate"), so a diagnostic-stream consumer can filter a run's warnings
// by which part of the portfolio raised them.
func Component(name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// ForEngine returns a sub-logger tagging every line with the engine kind
// it concerns — a Selector fallback, a crashed worker the Parallel Runner
// logged and moved past — rather than the orchestrator as a whole.
func ForEngine(kind enginekind.Kind) zerolog.Logger {
	return logger.With().Str("component", "engine").Str("engine", kind.String()).Logger()
}
