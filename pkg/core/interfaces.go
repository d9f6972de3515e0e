package core

import (
	"context"
)

// Environment is the hidden reward model an agent is evaluated against
type Environment interface {
	// Arms returns the size of the action space
	Arms() int
	// Pull plays one arm and returns the sampled reward
	Pull(arm int) (float64, StepInfo, error)
	// BestMean returns the true mean of the optimal arm, used for regret
	BestMean() float64
}

// Agent is the contract every bandit strategy implements.
//
// SelectArm and Update are called strictly alternately, once per step.
// Reset must erase everything learned so far and reseed any private
// random streams from seed alone.
type Agent interface {
	// Reset reinitializes estimates and random streams for a new episode
	Reset(seed int64)
	// SelectArm returns the arm to play next, in [0, n_arms)
	SelectArm(ctx context.Context) (int, error)
	// Update incorporates the outcome of the last selected arm
	Update(arm int, reward float64, info StepInfo)
	// Counts returns a copy of the per-arm pull counts
	Counts() []int
	// Q returns a copy of the per-arm value estimates
	Q() []float64
}

// Factory builds a fresh agent that only knows the number of arms
type Factory func(nArms int, seed int64) (Agent, error)
