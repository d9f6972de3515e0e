package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boristopalov/bandits/pkg/core"
)

type ExperimentConfig struct {
	Name         string        `yaml:"name"`
	Episodes     int           `yaml:"episodes"`
	Steps        int           `yaml:"steps"`
	Arms         int           `yaml:"arms"`
	Seed         int64         `yaml:"seed"`
	SmoothWindow int           `yaml:"smooth_window"`
	Chart        string        `yaml:"chart"` // HTML output path, empty to skip
	Agents       []AgentConfig `yaml:"agents"`
	Logging      LogConfig     `yaml:"logging"`
}

type LogConfig struct {
	Verbose bool   `yaml:"verbose"`
	Path    string `yaml:"path"`
}

// AgentConfig selects a registered strategy and its settings. Pointer
// fields distinguish "unset" from an explicit zero.
type AgentConfig struct {
	Kind         string         `yaml:"kind"`
	Name         string         `yaml:"name"`
	Team         string         `yaml:"team"`
	Algorithm    string         `yaml:"algorithm"`
	Epsilon      *float64       `yaml:"epsilon"`
	Confidence   *float64       `yaml:"c"`
	Provider     string         `yaml:"provider"`
	Model        string         `yaml:"model"`
	ConsultEvery int            `yaml:"consult_every"`
	Config       map[string]any `yaml:"config"`
}

func Float(v float64) *float64 {
	return &v
}

// Default mirrors the evaluation harness constants: 100 episodes of 2000
// steps on a 10-armed testbed, seed 7, smoothing window 50.
func Default() *ExperimentConfig {
	return &ExperimentConfig{
		Name:         "bandits",
		Episodes:     100,
		Steps:        2000,
		Arms:         10,
		Seed:         7,
		SmoothWindow: 50,
		Agents: []AgentConfig{
			{Kind: "epsilon-greedy", Name: "eps-0.1", Algorithm: "EpsGreedy(0.1)", Epsilon: Float(0.1)},
			{Kind: "epsilon-greedy", Name: "eps-0.5", Algorithm: "EpsGreedy(0.5)", Epsilon: Float(0.5)},
			{Kind: "ucb1", Name: "ucb1", Algorithm: "UCB1"},
			{Kind: "random", Name: "random", Algorithm: "Random"},
		},
	}
}

// Quick is the short sandbox run: 20 episodes of 1000 steps
func Quick() *ExperimentConfig {
	cfg := Default()
	cfg.Name = "quick"
	cfg.Episodes = 20
	cfg.Steps = 1000
	return cfg
}

// LoadConfig reads a YAML file on top of Default. A non-empty agents list
// in the file replaces the default agents.
func LoadConfig(path string) (*ExperimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ExperimentConfig) Validate() error {
	switch {
	case c.Episodes <= 0:
		return fmt.Errorf("%w: episodes must be positive, got %d", core.ErrInvalidConfiguration, c.Episodes)
	case c.Steps <= 0:
		return fmt.Errorf("%w: steps must be positive, got %d", core.ErrInvalidConfiguration, c.Steps)
	case c.Arms <= 0:
		return fmt.Errorf("%w: arms must be positive, got %d", core.ErrInvalidConfiguration, c.Arms)
	case c.SmoothWindow < 0:
		return fmt.Errorf("%w: smooth_window must not be negative, got %d", core.ErrInvalidConfiguration, c.SmoothWindow)
	case len(c.Agents) == 0:
		return fmt.Errorf("%w: no agents configured", core.ErrInvalidConfiguration)
	}

	seen := make(map[string]bool, len(c.Agents))
	for i, a := range c.Agents {
		if a.Kind == "" {
			return fmt.Errorf("%w: agent %d has no kind", core.ErrInvalidConfiguration, i)
		}
		name := a.Key()
		if seen[name] {
			return fmt.Errorf("%w: duplicate agent name %q", core.ErrInvalidConfiguration, name)
		}
		seen[name] = true
	}
	return nil
}

// Key returns the unique name of the agent within a run
func (a AgentConfig) Key() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Kind
}
