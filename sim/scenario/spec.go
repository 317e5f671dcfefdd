// Package scenario loads and validates multi-run scenario specifications.
// A spec names a sequence of simulation runs (user count, packet count,
// policy, seed) that the CLI executes independently.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meenakshi184/wifisim/sim"
)

// Spec is the top-level scenario configuration, loaded from YAML via Load.
type Spec struct {
	Version string    `yaml:"version"`
	Seed    int64     `yaml:"seed"`
	Runs    []RunSpec `yaml:"runs"`
}

// RunSpec defines a single simulation run within a scenario.
// Zero-valued fields fall back to the engine defaults.
type RunSpec struct {
	Name           string  `yaml:"name"`
	Users          int     `yaml:"users"`
	PacketsPerUser int     `yaml:"packets_per_user"`
	Policy         string  `yaml:"policy"`
	Seed           int64   `yaml:"seed,omitempty"`        // 0 = inherit spec seed
	TimeBudgetS    float64 `yaml:"time_budget_s,omitempty"`
	QueueCapacity  int     `yaml:"queue_capacity,omitempty"`
	MinBackoffUs   int64   `yaml:"min_backoff_us,omitempty"`
	MaxBackoffUs   int64   `yaml:"max_backoff_us,omitempty"`
}

// Load reads and validates a scenario spec from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario spec: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks every run of the spec.
func (s *Spec) Validate() error {
	if len(s.Runs) == 0 {
		return fmt.Errorf("scenario spec has no runs")
	}
	for i, r := range s.Runs {
		if r.Users <= 0 {
			return fmt.Errorf("run %d (%s): users must be positive, got %d", i, r.Name, r.Users)
		}
		if r.PacketsPerUser <= 0 {
			return fmt.Errorf("run %d (%s): packets_per_user must be positive, got %d", i, r.Name, r.PacketsPerUser)
		}
		if !sim.IsValidPolicy(r.Policy) {
			return fmt.Errorf("run %d (%s): unknown policy %q", i, r.Name, r.Policy)
		}
	}
	return nil
}

// Config materializes the i-th run into an engine configuration, layering the
// run's overrides on top of the engine defaults.
func (s *Spec) Config(i int) sim.Config {
	r := s.Runs[i]
	cfg := sim.DefaultConfig()
	cfg.UserCount = r.Users
	cfg.PacketsPerUser = r.PacketsPerUser
	cfg.Policy = sim.Policy(r.Policy)
	cfg.Seed = s.Seed
	if r.Seed != 0 {
		cfg.Seed = r.Seed
	}
	if r.TimeBudgetS > 0 {
		cfg.TimeBudget = int64(r.TimeBudgetS * float64(sim.TicksPerSecond))
	}
	if r.QueueCapacity > 0 {
		cfg.QueueCapacity = r.QueueCapacity
	}
	if r.MaxBackoffUs > 0 {
		cfg.MinBackoff = r.MinBackoffUs
		cfg.MaxBackoff = r.MaxBackoffUs
	}
	return cfg
}
