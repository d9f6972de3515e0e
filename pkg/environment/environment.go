package environment

import (
	"time"

	"github.com/boristopalov/bandits/pkg/core"
)

// State is a snapshot of an environment's bookkeeping
type State struct {
	Status    string
	Step      int
	Timestamp time.Time
}

func (s State) GetStatus() string {
	return s.Status
}

func (s State) GetStep() int {
	return s.Step
}

func (s State) GetTimestamp() time.Time {
	return s.Timestamp
}

// Factory builds a fresh environment for one episode
type Factory func(nArms int, seed int64) (core.Environment, error)

// Stochastic is the default Factory, producing Gaussian bandits
func Stochastic(nArms int, seed int64) (core.Environment, error) {
	b, err := NewStochasticBandit(nArms, seed)
	if err != nil {
		return nil, err
	}
	return b, nil
}
