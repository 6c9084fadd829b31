package refengine

import (
	"context"
	"testing"

	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/engine"
)

func TestDefaultRegistryHasAllFourEngines(t *testing.T) {
	c1 := oneQubitCircuit()
	c2 := oneQubitCircuit()
	cfg := config.Default()

	wantKinds := map[string]bool{ConstructionKey: true, AlternatingKey: true, ZXKey: true, SimulationKey: true}
	for key := range wantKinds {
		task, err := engine.DefaultRegistry.Build(key, c1, c2, cfg, 1)
		if err != nil {
			t.Fatalf("Build(%q): %v", key, err)
		}
		if _, err := task.Run(context.Background()); err != nil {
			t.Fatalf("Run(%q): %v", key, err)
		}
	}
}
