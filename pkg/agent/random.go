package agent

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/boristopalov/bandits/internal/rng"
	"github.com/boristopalov/bandits/pkg/core"
)

// Random ignores what it learns and always plays a uniform arm. It is the
// no-learning baseline whose regret grows linearly.
type Random struct {
	estimates
	n       int
	explore *rand.Rand
}

func NewRandom(nArms int, seed int64, opts ...Option) (*Random, error) {
	if nArms <= 0 {
		return nil, fmt.Errorf("%w: n_arms must be positive, got %d", core.ErrInvalidConfiguration, nArms)
	}
	a := &Random{
		estimates: newEstimates(nArms),
		n:         nArms,
	}
	a.Reset(seed)
	return a, nil
}

func (a *Random) Reset(seed int64) {
	a.explore = rng.New(rng.Derive(seed, exploreStream))
	a.reset()
}

func (a *Random) SelectArm(ctx context.Context) (int, error) {
	return a.explore.Intn(a.n), nil
}

func (a *Random) Update(arm int, reward float64, info core.StepInfo) {
	a.observe(arm, reward)
}
