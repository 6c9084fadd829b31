// Package runner implements the Sequential and Parallel Runners: the two
// strategies for fanning a selected engine-task multiset out to verdicts
// and folding them through the Verdict Lattice into one final answer.
package runner

import (
	"math/rand"
	"sort"
	"time"

	"github.com/mqt-go/eqcheck/engine"
	"github.com/mqt-go/eqcheck/enginekind"
)

// byPriority stable-sorts descriptors into the Sequential Runner's fixed
// priority order: Simulation trials, then Alternating, Construction, ZX.
func byPriority(descs []engine.TaskDescriptor) []engine.TaskDescriptor {
	sorted := make([]engine.TaskDescriptor, len(descs))
	copy(sorted, descs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityRank(sorted[i].Kind) < priorityRank(sorted[j].Kind)
	})
	return sorted
}

func priorityRank(kind enginekind.Kind) int {
	switch kind {
	case enginekind.Simulation:
		return 0
	case enginekind.Alternating:
		return 1
	case enginekind.Construction:
		return 2
	case enginekind.ZX:
		return 3
	default:
		return 4
	}
}

// bySpawnOrder stable-sorts descriptors into the Parallel Runner's spawn
// order: Alternating, Construction, ZX, then Simulation trials.
func bySpawnOrder(descs []engine.TaskDescriptor) []engine.TaskDescriptor {
	sorted := make([]engine.TaskDescriptor, len(descs))
	copy(sorted, descs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return spawnOrderRank(sorted[i].Kind) < spawnOrderRank(sorted[j].Kind)
	})
	return sorted
}

func spawnOrderRank(kind enginekind.Kind) int {
	switch kind {
	case enginekind.Alternating:
		return 0
	case enginekind.Construction:
		return 1
	case enginekind.ZX:
		return 2
	case enginekind.Simulation:
		return 3
	default:
		return 4
	}
}

// kindSet tracks which engine kinds are present among a descriptor
// multiset, so the runners can populate verdict.FuseContext's
// OnlyOneKindEnabled/OnlyEnabledKind fields.
type kindSet struct {
	kinds map[enginekind.Kind]bool
}

func newKindSet(descs []engine.TaskDescriptor) kindSet {
	ks := kindSet{kinds: make(map[enginekind.Kind]bool)}
	for _, d := range descs {
		ks.kinds[d.Kind] = true
	}
	return ks
}

func (ks kindSet) onlyOne() (enginekind.Kind, bool) {
	if len(ks.kinds) != 1 {
		return 0, false
	}
	for k := range ks.kinds {
		return k, true
	}
	return 0, false
}

func countSimulations(descs []engine.TaskDescriptor) int {
	n := 0
	for _, d := range descs {
		if d.Kind == enginekind.Simulation {
			n++
		}
	}
	return n
}

// newMasterRand seeds the per-run generator that draws a fresh uint64
// seed for each Simulation trial before it starts, realizing §5's rule
// that the shared StateGenerator is only ever advanced by the
// orchestrator itself, never by a worker after it has been spawned. A
// configured seed of 0 means OS-entropy, matching config.Simulation.Seed's
// documented "0 ⇒ OS-entropy" convention.
func newMasterRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(int64(seed)))
}
