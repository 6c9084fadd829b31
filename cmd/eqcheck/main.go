// Command eqcheck runs the portfolio equivalence checker over a pair of
// circuit files from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/mqt-go/eqcheck/isolate"
	_ "github.com/mqt-go/eqcheck/refengine"
)

func main() {
	// Must come before any flag/cobra parsing: a re-exec'd worker process
	// is launched with EQCHECK_WORKER=1 and never reaches the command
	// tree below.
	isolate.RunWorkerIfRequested()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
