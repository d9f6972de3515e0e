package main

import (
	"github.com/spf13/cobra"

	"github.com/boristopalov/bandits/pkg/config"
)

type runFlags struct {
	configPath string
	quick      bool
	episodes   int
	steps      int
	arms       int
	seed       int64
	window     int
	chart      string
	agents     []string
	verbose    bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML experiment file")
	fs.BoolVar(&f.quick, "quick", false, "short sandbox run (20 episodes x 1000 steps)")
	fs.IntVar(&f.episodes, "episodes", 0, "episodes per agent")
	fs.IntVar(&f.steps, "steps", 0, "steps per episode")
	fs.IntVar(&f.arms, "arms", 0, "number of arms")
	fs.Int64Var(&f.seed, "seed", 0, "base seed, episode i uses seed+i")
	fs.IntVar(&f.window, "window", 0, "moving average window for the reward chart")
	fs.StringVar(&f.chart, "chart", "", "write HTML charts to this file")
	fs.StringSliceVar(&f.agents, "agent", nil, "strategy kinds to evaluate, replaces the configured agents")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every episode")
}

// resolveConfig layers the config file (or a preset) under the flags the
// user actually set.
func resolveConfig(cmd *cobra.Command, f *runFlags) (*config.ExperimentConfig, error) {
	var cfg *config.ExperimentConfig
	switch {
	case f.configPath != "":
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case f.quick:
		cfg = config.Quick()
	default:
		cfg = config.Default()
	}

	fs := cmd.Flags()
	if fs.Changed("episodes") {
		cfg.Episodes = f.episodes
	}
	if fs.Changed("steps") {
		cfg.Steps = f.steps
	}
	if fs.Changed("arms") {
		cfg.Arms = f.arms
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("window") {
		cfg.SmoothWindow = f.window
	}
	if fs.Changed("chart") {
		cfg.Chart = f.chart
	}
	if fs.Changed("verbose") {
		cfg.Logging.Verbose = f.verbose
	}
	if len(f.agents) > 0 {
		cfg.Agents = make([]config.AgentConfig, len(f.agents))
		for i, kind := range f.agents {
			cfg.Agents[i] = config.AgentConfig{Kind: kind}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
