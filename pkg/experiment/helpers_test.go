package experiment

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/boristopalov/bandits/pkg/core"
	"github.com/boristopalov/bandits/pkg/environment"
)

// fixedAgent always plays the same arm
type fixedAgent struct {
	arm    int
	counts []int
	q      []float64
}

func newFixedAgent(nArms, arm int) *fixedAgent {
	return &fixedAgent{arm: arm, counts: make([]int, nArms), q: make([]float64, nArms)}
}

func (a *fixedAgent) Reset(seed int64) {
	a.counts = make([]int, len(a.counts))
	a.q = make([]float64, len(a.q))
}

func (a *fixedAgent) SelectArm(ctx context.Context) (int, error) { return a.arm, nil }

func (a *fixedAgent) Update(arm int, reward float64, info core.StepInfo) {
	a.counts[arm]++
	a.q[arm] += (reward - a.q[arm]) / float64(a.counts[arm])
}

func (a *fixedAgent) Counts() []int { return append([]int(nil), a.counts...) }
func (a *fixedAgent) Q() []float64  { return append([]float64(nil), a.q...) }

// oracleFactory builds agents that always play the optimal arm of the
// bandit drawn from the same seed
func oracleFactory(nArms int, seed int64) (core.Agent, error) {
	env, err := environment.NewStochasticBandit(nArms, seed)
	if err != nil {
		return nil, err
	}
	return newFixedAgent(nArms, floats.MaxIdx(env.QStar())), nil
}

func outOfRangeFactory(nArms int, seed int64) (core.Agent, error) {
	return newFixedAgent(nArms, nArms), nil
}

type panickyAgent struct{ fixedAgent }

func (a *panickyAgent) SelectArm(ctx context.Context) (int, error) {
	panic("strategy blew up")
}

func panickyFactory(nArms int, seed int64) (core.Agent, error) {
	return &panickyAgent{fixedAgent: *newFixedAgent(nArms, 0)}, nil
}
