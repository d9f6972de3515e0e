package environment

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/boristopalov/bandits/internal/rng"
	"github.com/boristopalov/bandits/pkg/core"
)

// StochasticBandit is an n-armed bandit with Gaussian rewards.
//
// The true mean of every arm is drawn once from N(0, 1) when the bandit is
// built and stays fixed for its whole lifetime, so the optimal arm of an
// episode is known in advance. Build a new bandit for every episode.
type StochasticBandit struct {
	nArms int
	qStar []float64
	t     int
	rng   *rand.Rand
	start time.Time
}

// NewStochasticBandit draws n true means from a stream seeded by seed
func NewStochasticBandit(nArms int, seed int64) (*StochasticBandit, error) {
	if nArms <= 0 {
		return nil, fmt.Errorf("%w: n_arms must be positive, got %d", core.ErrInvalidConfiguration, nArms)
	}
	r := rng.New(seed)
	qStar := make([]float64, nArms)
	for i := range qStar {
		qStar[i] = r.NormFloat64()
	}
	return &StochasticBandit{
		nArms: nArms,
		qStar: qStar,
		rng:   r,
		start: time.Now(),
	}, nil
}

// NewWithMeans builds a bandit with the given true means instead of
// drawing them. Rewards are still sampled from a stream seeded by seed.
func NewWithMeans(means []float64, seed int64) (*StochasticBandit, error) {
	if len(means) == 0 {
		return nil, fmt.Errorf("%w: at least one arm is required", core.ErrInvalidConfiguration)
	}
	return &StochasticBandit{
		nArms: len(means),
		qStar: append([]float64(nil), means...),
		rng:   rng.New(seed),
		start: time.Now(),
	}, nil
}

func (b *StochasticBandit) Arms() int {
	return b.nArms
}

// Pull samples a reward from N(q*[arm], 1). Exactly one value is drawn
// from the private stream per successful call.
func (b *StochasticBandit) Pull(arm int) (float64, core.StepInfo, error) {
	if arm < 0 || arm >= b.nArms {
		return 0, core.StepInfo{Step: b.t}, fmt.Errorf("%w: arm %d not in [0, %d)", core.ErrIndexOutOfRange, arm, b.nArms)
	}
	b.t++
	r := b.qStar[arm] + b.rng.NormFloat64()
	return r, core.StepInfo{Step: b.t}, nil
}

// BestMean returns max(q*), the expected reward of the optimal arm
func (b *StochasticBandit) BestMean() float64 {
	return floats.Max(b.qStar)
}

// QStar returns a copy of the true means. Only for inspection; agents never
// see it.
func (b *StochasticBandit) QStar() []float64 {
	return append([]float64(nil), b.qStar...)
}

// Steps returns the number of successful pulls so far
func (b *StochasticBandit) Steps() int {
	return b.t
}

func (b *StochasticBandit) State() State {
	status := "idle"
	if b.t > 0 {
		status = "running"
	}
	return State{
		Status:    status,
		Step:      b.t,
		Timestamp: b.start,
	}
}
