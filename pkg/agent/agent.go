package agent

import (
	"github.com/boristopalov/bandits/pkg/providers"
)

// Stream numbers for rng.Derive, one per private stream of an agent
const (
	exploreStream uint64 = iota + 1
	tieBreakStream
)

type ModelInfo struct {
	Id     string         // e.g. "gpt-4o-mini"
	Config map[string]any // model-specific configuration
}

// Params collects the knobs of every built-in strategy. Each constructor
// reads only the fields it needs.
type Params struct {
	Epsilon      float64 // epsilon-greedy exploration probability
	Confidence   float64 // UCB1 exploration bonus c
	AgentID      string
	Model        ModelInfo
	Client       providers.Client
	ConsultEvery int // LLM agent: steps between model calls
	HistorySize  int // LLM agent: observations kept for the prompt
}

type Option func(*Params)

func WithEpsilon(epsilon float64) Option {
	return func(p *Params) {
		p.Epsilon = epsilon
	}
}

func WithConfidence(c float64) Option {
	return func(p *Params) {
		p.Confidence = c
	}
}

func WithAgentId(id string) Option {
	return func(p *Params) {
		p.AgentID = id
	}
}

func WithModel(model ModelInfo) Option {
	return func(p *Params) {
		p.Model = model
	}
}

func WithClient(c providers.Client) Option {
	return func(p *Params) {
		p.Client = c
	}
}

func WithConsultEvery(steps int) Option {
	return func(p *Params) {
		p.ConsultEvery = steps
	}
}

func WithHistorySize(n int) Option {
	return func(p *Params) {
		p.HistorySize = n
	}
}

func defaultParams() *Params {
	return &Params{
		Epsilon:    0.1,
		Confidence: 2.0,
		Model: ModelInfo{
			Id:     "gpt-4o-mini",
			Config: make(map[string]any),
		},
		ConsultEvery: 1,
		HistorySize:  memoryCapacity,
	}
}

const memoryCapacity = 20

func applyOptions(opts []Option) *Params {
	params := defaultParams()
	for _, opt := range opts {
		opt(params)
	}
	return params
}

