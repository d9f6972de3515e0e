package agent

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/boristopalov/bandits/internal/rng"
	"github.com/boristopalov/bandits/pkg/core"
)

// UCB1 plays every arm once, then the arm maximizing
// Q[a] + c*sqrt(ln t / N[a]).
type UCB1 struct {
	estimates
	n        int
	c        float64
	tieBreak *rand.Rand
	scores   []float64
}

func NewUCB1(nArms int, seed int64, opts ...Option) (*UCB1, error) {
	params := applyOptions(opts)
	if nArms <= 0 {
		return nil, fmt.Errorf("%w: n_arms must be positive, got %d", core.ErrInvalidConfiguration, nArms)
	}
	if params.Confidence < 0 || math.IsNaN(params.Confidence) {
		return nil, fmt.Errorf("%w: confidence must be non-negative, got %v", core.ErrInvalidConfiguration, params.Confidence)
	}

	a := &UCB1{
		estimates: newEstimates(nArms),
		n:         nArms,
		c:         params.Confidence,
		scores:    make([]float64, nArms),
	}
	a.Reset(seed)
	return a, nil
}

func (a *UCB1) Reset(seed int64) {
	a.tieBreak = rng.New(rng.Derive(seed, tieBreakStream))
	a.reset()
}

func (a *UCB1) SelectArm(ctx context.Context) (int, error) {
	logT := math.Log(float64(a.total()))
	for i := range a.scores {
		if a.counts[i] == 0 {
			a.scores[i] = math.Inf(1)
			continue
		}
		a.scores[i] = a.q[i] + a.c*math.Sqrt(logT/float64(a.counts[i]))
	}
	best := argmaxAll(a.scores)
	return best[a.tieBreak.Intn(len(best))], nil
}

func (a *UCB1) Update(arm int, reward float64, info core.StepInfo) {
	a.observe(arm, reward)
}
