package core

import (
	"time"
)

// StepInfo is the metadata returned alongside every reward
type StepInfo struct {
	Step int // environment step counter after the pull
}

// Submission is one strategy entered into an evaluation
type Submission struct {
	Name      string // registry key, unique per run
	Team      string // display label of the authors
	Algorithm string // display label of the strategy
	Factory   Factory
}

// Label returns the display name used in logs and charts
func (s Submission) Label() string {
	if s.Team == "" {
		return s.Algorithm
	}
	return s.Algorithm + " (" + s.Team + ")"
}

// Outcome holds the per-step series of a single episode
type Outcome struct {
	Rewards []float64
	Regret  []float64 // cumulative
}

// Result is the aggregated output of evaluating one submission
type Result struct {
	RunID      string
	Name       string
	Team       string
	Algorithm  string
	MeanReward []float64
	MeanRegret []float64
	Elapsed    time.Duration
	Err        error
}

// Label returns the display name used in logs and charts
func (r Result) Label() string {
	return Submission{Team: r.Team, Algorithm: r.Algorithm}.Label()
}

// FinalRegret returns the mean cumulative regret at the last step
func (r Result) FinalRegret() float64 {
	if len(r.MeanRegret) == 0 {
		return 0
	}
	return r.MeanRegret[len(r.MeanRegret)-1]
}

// Failed reports whether the evaluation of this submission was aborted
func (r Result) Failed() bool {
	return r.Err != nil
}

type ExperimentStatus struct {
	Running   bool
	StartTime time.Time
	EndTime   time.Time
	Errors    []error
}
