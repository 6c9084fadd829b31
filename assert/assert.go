// Package assert provides a testing helper narrowed from gnark's
// test.Assert to this repository's own need: running an equivalence
// check with both the Sequential and Parallel Runner and requiring them
// to agree, the way test.Assert.ProverSucceeded runs a circuit across
// every configured curve/backend combination and requires them to agree.
package assert

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mqt-go/eqcheck"
	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/verdict"
)

// Assert embeds a testify/require object for convenience, matching
// test.Assert's shape.
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper for t.
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Run runs fn as a subtest named by joining descs with "/".
func (a *Assert) Run(fn func(assert *Assert), descs ...string) {
	desc := strings.Join(descs, "/")
	a.t.Run(desc, func(t *testing.T) {
		fn(&Assert{t: t, Assertions: require.New(t)})
	})
}

// Log logs using the underlying test instance.
func (a *Assert) Log(v ...interface{}) {
	a.t.Log(v...)
}

// Equivalent runs the equivalence check over (c1, c2) under opts twice —
// once forcing the Sequential Runner, once forcing the Parallel Runner —
// and fails the test unless both agree. It returns the agreed verdict.
func (a *Assert) Equivalent(c1, c2 *circuit.Circuit, opts ...eqcheck.Option) verdict.Verdict {
	base, err := config.Apply(config.Default(), opts...)
	a.Require().NoError(err)

	sequential := base
	sequential.Execution.Parallel = false

	parallel := base
	parallel.Execution.Parallel = true
	if parallel.Execution.NThreads <= 1 {
		parallel.Execution.NThreads = 4
	}

	seqVerdict := a.runWith(c1, c2, sequential)
	parVerdict := a.runWith(c1, c2, parallel)
	a.Equal(seqVerdict, parVerdict, "sequential and parallel runners disagreed")
	return seqVerdict
}

// Require returns the embedded *require.Assertions, mirroring
// test.Assert's direct field access for callers that prefer the explicit
// accessor form.
func (a *Assert) Require() *require.Assertions {
	return a.Assertions
}

func (a *Assert) runWith(c1, c2 *circuit.Circuit, cfg config.Config) verdict.Verdict {
	m, err := eqcheck.New(c1, c2, func(c *config.Config) error {
		*c = cfg
		return nil
	})
	a.Require().NoError(err)

	res, err := m.Run(context.Background())
	a.Require().NoError(err)
	return res.Equivalence
}
