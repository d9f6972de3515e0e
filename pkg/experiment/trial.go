package experiment

import (
	"context"
	"fmt"

	"github.com/boristopalov/bandits/pkg/core"
)

// RunTrial drives one agent through steps pulls of env and records the
// reward and cumulative regret of every step.
//
// Regret is realized regret: each step adds best_q - r for the reward r
// actually received, so the curve carries the reward noise as well.
func RunTrial(ctx context.Context, env core.Environment, a core.Agent, steps int) (core.Outcome, error) {
	if steps <= 0 {
		return core.Outcome{}, fmt.Errorf("%w: steps must be positive, got %d", core.ErrInvalidConfiguration, steps)
	}
	if env == nil {
		return core.Outcome{}, fmt.Errorf("%w: no environment", core.ErrInvalidConfiguration)
	}
	if a == nil {
		return core.Outcome{}, fmt.Errorf("%w: factory returned no agent", core.ErrContractViolation)
	}

	guard := NewGuard(a, env.Arms())
	bestQ := env.BestMean()
	out := core.Outcome{
		Rewards: make([]float64, steps),
		Regret:  make([]float64, steps),
	}

	var cumRegret float64
	for t := 0; t < steps; t++ {
		arm, err := guard.SelectArm(ctx)
		if err != nil {
			return core.Outcome{}, fmt.Errorf("step %d: %w", t+1, err)
		}
		r, info, err := env.Pull(arm)
		if err != nil {
			return core.Outcome{}, fmt.Errorf("step %d: %w", t+1, err)
		}
		if err := guard.Update(arm, r, info); err != nil {
			return core.Outcome{}, fmt.Errorf("step %d: %w", t+1, err)
		}

		out.Rewards[t] = r
		cumRegret += bestQ - r
		out.Regret[t] = cumRegret
	}
	return out, nil
}
