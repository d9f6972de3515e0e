package agent

// estimates holds the per-arm statistics every built-in strategy exposes
type estimates struct {
	counts []int
	q      []float64
}

func newEstimates(n int) estimates {
	return estimates{
		counts: make([]int, n),
		q:      make([]float64, n),
	}
}

func (e *estimates) reset() {
	for i := range e.q {
		e.counts[i] = 0
		e.q[i] = 0
	}
}

// observe folds reward into the running sample mean of arm
func (e *estimates) observe(arm int, reward float64) {
	e.counts[arm]++
	e.q[arm] += (reward - e.q[arm]) / float64(e.counts[arm])
}

func (e *estimates) Counts() []int {
	return append([]int(nil), e.counts...)
}

func (e *estimates) Q() []float64 {
	return append([]float64(nil), e.q...)
}

func (e *estimates) total() int {
	n := 0
	for _, c := range e.counts {
		n += c
	}
	return n
}

// argmaxAll returns every index whose score equals the maximum
func argmaxAll(scores []float64) []int {
	best := make([]int, 0, len(scores))
	for i, s := range scores {
		switch {
		case len(best) == 0 || s > scores[best[0]]:
			best = append(best[:0], i)
		case s == scores[best[0]]:
			best = append(best, i)
		}
	}
	return best
}
