package experiment

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/boristopalov/bandits/pkg/core"
	"github.com/boristopalov/bandits/pkg/environment"
	"github.com/boristopalov/bandits/pkg/messaging"
)

type Config struct {
	Name     string
	Episodes int
	Steps    int
	Arms     int
	BaseSeed int64
}

func (c Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("%w: episodes must be positive, got %d", core.ErrInvalidConfiguration, c.Episodes)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", core.ErrInvalidConfiguration, c.Steps)
	}
	if c.Arms <= 0 {
		return fmt.Errorf("%w: arms must be positive, got %d", core.ErrInvalidConfiguration, c.Arms)
	}
	return nil
}

// Evaluation averages many independently seeded episodes per submission.
// Episode i uses seed BaseSeed+i for both the environment and the agent,
// so every submission faces the same family of bandits.
type Evaluation struct {
	cfg       Config
	newEnv    environment.Factory
	publisher messaging.Publisher
	runID     string
	verbose   bool

	mu     sync.RWMutex
	status core.ExperimentStatus
}

type Option func(*Evaluation)

// WithEnvironment replaces the Gaussian bandit factory
func WithEnvironment(f environment.Factory) Option {
	return func(e *Evaluation) {
		e.newEnv = f
	}
}

// WithPublisher sends started, finished and failed events to p
func WithPublisher(p messaging.Publisher) Option {
	return func(e *Evaluation) {
		e.publisher = p
	}
}

func WithRunID(id string) Option {
	return func(e *Evaluation) {
		e.runID = id
	}
}

// WithVerbose logs one line per episode
func WithVerbose(v bool) Option {
	return func(e *Evaluation) {
		e.verbose = v
	}
}

func New(cfg Config, opts ...Option) (*Evaluation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Evaluation{
		cfg:    cfg,
		newEnv: environment.Stochastic,
		runID:  "run-" + uuid.New().String(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Evaluation) RunID() string {
	return e.runID
}

func (e *Evaluation) Config() Config {
	return e.cfg
}

func (e *Evaluation) Status() core.ExperimentStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	status := e.status
	status.Errors = append([]error(nil), e.status.Errors...)
	return status
}

// Evaluate runs every episode for one submission and returns the per-step
// means. A panic inside agent code is reported as a contract violation.
func (e *Evaluation) Evaluate(ctx context.Context, sub core.Submission) (res core.Result, err error) {
	res = core.Result{
		RunID:     e.runID,
		Name:      sub.Name,
		Team:      sub.Team,
		Algorithm: sub.Algorithm,
	}
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: agent panicked: %v", core.ErrContractViolation, r)
		}
		res.Elapsed = time.Since(start)
		if err != nil {
			res.Err = err
			res.MeanReward, res.MeanRegret = nil, nil
		}
	}()

	if sub.Factory == nil {
		return res, fmt.Errorf("%w: submission %q has no factory", core.ErrContractViolation, sub.Name)
	}

	steps := e.cfg.Steps
	sumReward := make([]float64, steps)
	sumRegret := make([]float64, steps)
	for ep := 0; ep < e.cfg.Episodes; ep++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		seed := e.cfg.BaseSeed + int64(ep)

		out, err := e.runEpisode(ctx, sub, seed)
		if err != nil {
			return res, fmt.Errorf("episode %d: %w", ep, err)
		}
		floats.Add(sumReward, out.Rewards)
		floats.Add(sumRegret, out.Regret)

		if e.verbose {
			log.Printf("%s episode %d/%d: final regret %.2f", sub.Label(), ep+1, e.cfg.Episodes, out.Regret[steps-1])
		}
	}

	scale := 1 / float64(e.cfg.Episodes)
	floats.Scale(scale, sumReward)
	floats.Scale(scale, sumRegret)
	res.MeanReward = sumReward
	res.MeanRegret = sumRegret
	return res, nil
}

func (e *Evaluation) runEpisode(ctx context.Context, sub core.Submission, seed int64) (core.Outcome, error) {
	env, err := e.newEnv(e.cfg.Arms, seed)
	if err != nil {
		return core.Outcome{}, fmt.Errorf("failed to create environment: %w", err)
	}
	a, err := sub.Factory(e.cfg.Arms, seed)
	if err != nil {
		return core.Outcome{}, fmt.Errorf("failed to create agent: %w", err)
	}
	if a == nil {
		return core.Outcome{}, fmt.Errorf("%w: factory returned no agent", core.ErrContractViolation)
	}
	a.Reset(seed)
	return RunTrial(ctx, env, a, e.cfg.Steps)
}

// Compare evaluates the submissions in order. A submission that fails is
// reported through its Result.Err and does not stop the others. Evaluation
// stops early only when ctx is done.
func (e *Evaluation) Compare(ctx context.Context, subs []core.Submission) []core.Result {
	e.mu.Lock()
	e.status.Running = true
	e.status.StartTime = time.Now()
	e.status.Errors = nil
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.status.Running = false
		e.status.EndTime = time.Now()
		e.mu.Unlock()
	}()

	results := make([]core.Result, 0, len(subs))
	for _, sub := range subs {
		if ctx.Err() != nil {
			break
		}
		e.publish(messaging.EvaluationStarted, core.Result{
			RunID:     e.runID,
			Name:      sub.Name,
			Team:      sub.Team,
			Algorithm: sub.Algorithm,
		})

		res, err := e.Evaluate(ctx, sub)
		results = append(results, res)
		if err != nil {
			log.Printf("evaluation of %s failed: %v", sub.Label(), err)
			e.mu.Lock()
			e.status.Errors = append(e.status.Errors, fmt.Errorf("%s: %w", sub.Name, err))
			e.mu.Unlock()
			e.publish(messaging.EvaluationFailed, res)
			continue
		}
		log.Printf("→ %s done in %.1fs", sub.Algorithm, res.Elapsed.Seconds())
		e.publish(messaging.EvaluationFinished, res)
	}
	return results
}

func (e *Evaluation) publish(kind messaging.EventKind, res core.Result) {
	if e.publisher == nil {
		return
	}
	ev := messaging.Event{
		RunID:     e.runID,
		Kind:      kind,
		Result:    res,
		Timestamp: time.Now(),
	}
	if err := e.publisher.Publish(ev); err != nil {
		log.Printf("failed to publish %s event for %s: %v", kind, res.Name, err)
	}
}
