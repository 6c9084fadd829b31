// Package config defines the flat, six-group Configuration record the
// Portfolio Orchestrator is driven by, assembled through functional
// options the way github.com/consensys/gnark's backend.ProverOption
// assembles a backend.ProverConfig.
package config

import "time"

// StateType names the distribution the Simulation engine draws trial
// states from.
type StateType uint8

const (
	ComputationalBasis StateType = iota
	Random1QBasis
	Stabilizer
)

var stateTypeNames = [...]string{
	ComputationalBasis: "computational_basis",
	Random1QBasis:      "random_1Q_basis",
	Stabilizer:         "stabilizer",
}

var stateTypeAliases = map[string]StateType{
	"computational_basis": ComputationalBasis,
	"classical":           ComputationalBasis,
	"random_1Q_basis":     Random1QBasis,
	"local_quantum":       Random1QBasis,
	"stabilizer":          Stabilizer,
	"global_quantum":      Stabilizer,
}

func (s StateType) String() string {
	if int(s) < len(stateTypeNames) {
		return stateTypeNames[s]
	}
	return "unknown"
}

// ParseStateType resolves any of the documented aliases to a StateType.
func ParseStateType(s string) (StateType, bool) {
	v, ok := stateTypeAliases[s]
	return v, ok
}

func (s StateType) MarshalJSON() ([]byte, error) { return []byte(`"` + s.String() + `"`), nil }

func (s *StateType) UnmarshalJSON(data []byte) error {
	return unmarshalAliased(data, ParseStateType, s, "state type")
}

// ApplicationScheme names the per-checker gate-application strategy.
type ApplicationScheme uint8

const (
	Sequential ApplicationScheme = iota
	OneToOne
	Lookahead
	GateCost
	Proportional
)

var applicationSchemeNames = [...]string{
	Sequential:   "sequential",
	OneToOne:     "one_to_one",
	Lookahead:    "lookahead",
	GateCost:     "gate_cost",
	Proportional: "proportional",
}

var applicationSchemeAliases = map[string]ApplicationScheme{
	"sequential":        Sequential,
	"reference":         Sequential,
	"one_to_one":        OneToOne,
	"naive":             OneToOne,
	"lookahead":         Lookahead,
	"gate_cost":         GateCost,
	"compilation_flow":  GateCost,
	"proportional":      Proportional,
}

func (a ApplicationScheme) String() string {
	if int(a) < len(applicationSchemeNames) {
		return applicationSchemeNames[a]
	}
	return "unknown"
}

// ParseApplicationScheme resolves any of the documented aliases.
func ParseApplicationScheme(s string) (ApplicationScheme, bool) {
	v, ok := applicationSchemeAliases[s]
	return v, ok
}

func (a ApplicationScheme) MarshalJSON() ([]byte, error) { return []byte(`"` + a.String() + `"`), nil }

func (a *ApplicationScheme) UnmarshalJSON(data []byte) error {
	return unmarshalAliased(data, ParseApplicationScheme, a, "application scheme")
}

func unmarshalAliased[T ~uint8](data []byte, parse func(string) (T, bool), out *T, kind string) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, ok := parse(s)
	if !ok {
		return &unknownAliasError{kind: kind, value: s}
	}
	*out = v
	return nil
}

type unknownAliasError struct {
	kind, value string
}

func (e *unknownAliasError) Error() string {
	return "config: unknown " + e.kind + " " + e.value
}

// CostRule is one line of a gate-cost profile: the cost of applying Gate
// with NControls control qubits.
type CostRule struct {
	Gate      string
	NControls int
	Cost      int
}

// CostProfile is a parsed gate-cost profile, as produced by gatecost.Parse.
type CostProfile struct {
	Rules       []CostRule
	DefaultCost int
}

// Cost looks up the configured cost for a gate with the given number of
// controls, falling back to DefaultCost (1, unless overridden) for
// unknown gate ids, per spec §6.
func (p CostProfile) Cost(gate string, nControls int) int {
	for _, r := range p.Rules {
		if r.Gate == gate && r.NControls == nControls {
			return r.Cost
		}
	}
	if p.DefaultCost != 0 {
		return p.DefaultCost
	}
	return 1
}

// Execution groups the run-level controls.
type Execution struct {
	Parallel              bool
	NThreads              uint32
	TimeoutSeconds        float64
	RunConstruction       bool
	RunSimulation         bool
	RunAlternating        bool
	RunZX                 bool
	NumericalTolerance    float64
	SetAllAncillaeGarbage bool
}

// HasTimeout reports whether a positive timeout is configured.
func (e Execution) HasTimeout() bool { return e.TimeoutSeconds > 0 }

// Timeout returns the configured timeout as a time.Duration, or 0 if none.
func (e Execution) Timeout() time.Duration {
	if !e.HasTimeout() {
		return 0
	}
	return time.Duration(e.TimeoutSeconds * float64(time.Second))
}

// Optimizations groups the eight Circuit Normalizer switches.
type Optimizations struct {
	FuseSingleQubit                bool
	ReconstructSwaps               bool
	RemoveDiagonalBeforeMeasure    bool
	TransformDynamicCircuit        bool
	ReorderOps                     bool
	BackpropagateOutputPermutation bool
	ElidePermutations              bool
	SkipOptimization               bool
}

// Application groups the per-checker application-scheme configuration.
type Application struct {
	ConstructionScheme ApplicationScheme
	SimulationScheme   ApplicationScheme
	AlternatingScheme  ApplicationScheme
	CostProfile        *CostProfile
}

// Functionality groups the trace-distance threshold and partial
// equivalence switch.
type Functionality struct {
	TraceThreshold          float64
	CheckPartialEquivalence bool
}

// Simulation groups the simulation-engine controls.
type Simulation struct {
	FidelityThreshold float64
	MaxSims           uint32
	StateType         StateType
	Seed              uint64
}

// Parameterized groups the symbolic-parameter controls.
type Parameterized struct {
	ZeroTolerance       float64
	ExtraInstantiations uint32
}

// Config is the flat, six-group configuration record.
type Config struct {
	Execution     Execution
	Optimizations Optimizations
	Application   Application
	Functionality Functionality
	Simulation    Simulation
	Parameterized Parameterized
}

// Default returns a Config with the documented defaults applied
// (traceThreshold = 1e-8, fidelityThreshold = 1e-8, all four engines on).
func Default() Config {
	return Config{
		Execution: Execution{
			RunConstruction:    true,
			RunSimulation:      true,
			RunAlternating:     true,
			RunZX:              true,
			NumericalTolerance: 1e-13,
		},
		Optimizations: Optimizations{
			FuseSingleQubit:                true,
			ReconstructSwaps:               true,
			RemoveDiagonalBeforeMeasure:    true,
			ReorderOps:                     true,
			BackpropagateOutputPermutation: true,
			ElidePermutations:              true,
		},
		Functionality: Functionality{
			TraceThreshold: 1e-8,
		},
		Simulation: Simulation{
			FidelityThreshold: 1e-8,
			MaxSims:           16,
			StateType:         ComputationalBasis,
		},
	}
}

// Option mutates a Config being assembled, matching
// backend.ProverOption's functional-options shape.
type Option func(*Config) error

// Apply runs every option against a copy of cfg and returns the result.
func Apply(cfg Config, opts ...Option) (Config, error) {
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// WithExecution overrides the Execution group wholesale.
func WithExecution(e Execution) Option {
	return func(c *Config) error { c.Execution = e; return nil }
}

// WithOptimizations overrides the Optimizations group wholesale.
func WithOptimizations(o Optimizations) Option {
	return func(c *Config) error { c.Optimizations = o; return nil }
}

// WithApplication overrides the Application group wholesale.
func WithApplication(a Application) Option {
	return func(c *Config) error { c.Application = a; return nil }
}

// WithFunctionality overrides the Functionality group wholesale.
func WithFunctionality(f Functionality) Option {
	return func(c *Config) error { c.Functionality = f; return nil }
}

// WithSimulation overrides the Simulation group wholesale.
func WithSimulation(s Simulation) Option {
	return func(c *Config) error { c.Simulation = s; return nil }
}

// WithParameterized overrides the Parameterized group wholesale.
func WithParameterized(p Parameterized) Option {
	return func(c *Config) error { c.Parameterized = p; return nil }
}

// WithGateCostProfile forces the GateCost application scheme on all three
// checker slots and attaches profile, matching the Manager Facade's
// SetGateCostProfile convenience method.
func WithGateCostProfile(profile CostProfile) Option {
	return func(c *Config) error {
		c.Application.ConstructionScheme = GateCost
		c.Application.SimulationScheme = GateCost
		c.Application.AlternatingScheme = GateCost
		c.Application.CostProfile = &profile
		return nil
	}
}

// WithApplicationScheme sets the same scheme on all three checker slots,
// matching the Manager Facade's SetApplicationScheme convenience method.
func WithApplicationScheme(scheme ApplicationScheme) Option {
	return func(c *Config) error {
		c.Application.ConstructionScheme = scheme
		c.Application.SimulationScheme = scheme
		c.Application.AlternatingScheme = scheme
		return nil
	}
}

// DisableAllCheckers turns off all four engines, matching the Manager
// Facade's DisableAllCheckers convenience method.
func DisableAllCheckers() Option {
	return func(c *Config) error {
		c.Execution.RunConstruction = false
		c.Execution.RunSimulation = false
		c.Execution.RunAlternating = false
		c.Execution.RunZX = false
		return nil
	}
}
