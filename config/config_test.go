package config

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"
)

func sample() Config {
	cfg := Default()
	cfg.Execution.Parallel = true
	cfg.Execution.NThreads = 4
	cfg.Execution.TimeoutSeconds = 2.5
	cfg.Simulation.StateType = Stabilizer
	cfg.Simulation.MaxSims = 32
	cfg.Application.ConstructionScheme = GateCost
	cfg.Application.CostProfile = &CostProfile{
		Rules:       []CostRule{{Gate: "x", NControls: 2, Cost: 15}},
		DefaultCost: 1,
	}
	return cfg
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := sample()
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	cfg := sample()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Config
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStateTypeAliases(t *testing.T) {
	cases := map[string]StateType{
		"computational_basis": ComputationalBasis,
		"classical":           ComputationalBasis,
		"random_1Q_basis":     Random1QBasis,
		"local_quantum":       Random1QBasis,
		"stabilizer":          Stabilizer,
		"global_quantum":      Stabilizer,
	}
	for alias, want := range cases {
		got, ok := ParseStateType(alias)
		if !ok || got != want {
			t.Fatalf("ParseStateType(%q) = (%v, %v), want (%v, true)", alias, got, ok, want)
		}
	}
}

func TestApplicationSchemeAliases(t *testing.T) {
	cases := map[string]ApplicationScheme{
		"sequential":       Sequential,
		"reference":        Sequential,
		"one_to_one":       OneToOne,
		"naive":            OneToOne,
		"lookahead":        Lookahead,
		"gate_cost":        GateCost,
		"compilation_flow": GateCost,
		"proportional":     Proportional,
	}
	for alias, want := range cases {
		got, ok := ParseApplicationScheme(alias)
		if !ok || got != want {
			t.Fatalf("ParseApplicationScheme(%q) = (%v, %v), want (%v, true)", alias, got, ok, want)
		}
	}
}

func TestCostProfileFallback(t *testing.T) {
	p := CostProfile{Rules: []CostRule{{Gate: "x", NControls: 2, Cost: 15}}}
	if got := p.Cost("x", 2); got != 15 {
		t.Fatalf("Cost(x,2) = %d, want 15", got)
	}
	if got := p.Cost("unknown_gate", 0); got != 1 {
		t.Fatalf("Cost(unknown) = %d, want default 1", got)
	}
}

func TestDisableAllCheckers(t *testing.T) {
	cfg, err := Apply(Default(), DisableAllCheckers())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Execution.RunConstruction || cfg.Execution.RunSimulation || cfg.Execution.RunAlternating || cfg.Execution.RunZX {
		t.Fatal("expected all checkers disabled")
	}
}

func TestWithGateCostProfileForcesScheme(t *testing.T) {
	profile := CostProfile{DefaultCost: 1}
	cfg, err := Apply(Default(), WithGateCostProfile(profile))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Application.ConstructionScheme != GateCost || cfg.Application.SimulationScheme != GateCost || cfg.Application.AlternatingScheme != GateCost {
		t.Fatal("expected GateCost on all three checker slots")
	}
	if cfg.Application.CostProfile == nil {
		t.Fatal("expected cost profile attached")
	}
}
