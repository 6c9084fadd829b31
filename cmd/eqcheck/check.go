package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/mqt-go/eqcheck"
	"github.com/mqt-go/eqcheck/circuit"
	"github.com/mqt-go/eqcheck/config"
	"github.com/mqt-go/eqcheck/gatecost"
)

var (
	fConfigPath      string
	fGateCostPath    string
	fDisableCheckers bool
)

var checkCmd = &cobra.Command{
	Use:   "check <circuit1.json> <circuit2.json>",
	Short: "Check two circuit files for equivalence and print the Results as JSON",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&fConfigPath, "config", "", "path to a YAML configuration file")
	checkCmd.Flags().StringVar(&fGateCostPath, "gate-cost-profile", "", "path to a gate-cost profile, forces the GateCost application scheme")
	checkCmd.Flags().BoolVar(&fDisableCheckers, "disable-all-checkers", false, "disable all four engines")
}

func runCheck(cmd *cobra.Command, args []string) error {
	c1, err := loadCircuit(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}
	c2, err := loadCircuit(args[1])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[1], err)
	}

	cfg, err := loadConfig(fConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts := []eqcheck.Option{
		config.WithExecution(cfg.Execution),
		config.WithOptimizations(cfg.Optimizations),
		config.WithApplication(cfg.Application),
		config.WithFunctionality(cfg.Functionality),
		config.WithSimulation(cfg.Simulation),
		config.WithParameterized(cfg.Parameterized),
	}

	if fGateCostPath != "" {
		f, err := os.Open(fGateCostPath)
		if err != nil {
			return fmt.Errorf("opening gate-cost profile: %w", err)
		}
		profile, err := gatecost.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing gate-cost profile: %w", err)
		}
		opts = append(opts, config.WithGateCostProfile(profile))
	}
	if fDisableCheckers {
		opts = append(opts, config.DisableAllCheckers())
	}

	manager, err := eqcheck.New(c1, c2, opts...)
	if err != nil {
		return fmt.Errorf("constructing manager: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), deadlineFor(cfg))
	defer cancel()

	res, err := manager.Run(ctx)
	if err != nil {
		return fmt.Errorf("running check: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// deadlineFor gives the Manager its own configured timeout plus headroom
// for the isolator to tear down and report the exception, rather than
// cutting the process context at exactly the same instant.
func deadlineFor(cfg config.Config) time.Duration {
	if cfg.Execution.HasTimeout() {
		return cfg.Execution.Timeout() + 5*time.Second
	}
	return 10 * time.Minute
}

func loadCircuit(path string) (*circuit.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c circuit.Circuit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
