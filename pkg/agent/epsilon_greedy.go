package agent

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/boristopalov/bandits/internal/rng"
	"github.com/boristopalov/bandits/pkg/core"
)

// EpsilonGreedy explores uniformly with probability epsilon and otherwise
// plays the arm with the highest estimate. Ties are broken uniformly at
// random so low-index arms are not favored.
type EpsilonGreedy struct {
	estimates
	n        int
	epsilon  float64
	explore  *rand.Rand
	tieBreak *rand.Rand
}

func NewEpsilonGreedy(nArms int, seed int64, opts ...Option) (*EpsilonGreedy, error) {
	params := applyOptions(opts)
	if nArms <= 0 {
		return nil, fmt.Errorf("%w: n_arms must be positive, got %d", core.ErrInvalidConfiguration, nArms)
	}
	if params.Epsilon < 0 || params.Epsilon > 1 {
		return nil, fmt.Errorf("%w: epsilon must be in [0, 1], got %v", core.ErrInvalidConfiguration, params.Epsilon)
	}

	a := &EpsilonGreedy{
		estimates: newEstimates(nArms),
		n:         nArms,
		epsilon:   params.Epsilon,
	}
	a.Reset(seed)
	return a, nil
}

func (a *EpsilonGreedy) Reset(seed int64) {
	a.explore = rng.New(rng.Derive(seed, exploreStream))
	a.tieBreak = rng.New(rng.Derive(seed, tieBreakStream))
	a.reset()
}

func (a *EpsilonGreedy) SelectArm(ctx context.Context) (int, error) {
	if a.explore.Float64() < a.epsilon {
		return a.explore.Intn(a.n), nil
	}
	best := argmaxAll(a.q)
	return best[a.tieBreak.Intn(len(best))], nil
}

func (a *EpsilonGreedy) Update(arm int, reward float64, info core.StepInfo) {
	a.observe(arm, reward)
}

func (a *EpsilonGreedy) Epsilon() float64 {
	return a.epsilon
}
