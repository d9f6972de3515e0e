package registry

import (
	"context"
	"fmt"

	"github.com/boristopalov/bandits/pkg/agent"
	"github.com/boristopalov/bandits/pkg/config"
	"github.com/boristopalov/bandits/pkg/core"
	"github.com/boristopalov/bandits/pkg/providers"
)

const (
	KindEpsilonGreedy = "epsilon-greedy"
	KindUCB1          = "ucb1"
	KindRandom        = "random"
	KindLLM           = "llm"
)

var defaultModels = map[string]string{
	"":                   "gpt-4o-mini",
	providers.NameOpenAI: "gpt-4o-mini",
	providers.NameGemini: "gemini-2.0-flash-exp",
}

// Default returns a registry holding every built-in strategy
func Default() *Registry {
	r := NewRegistry()
	for kind, b := range map[string]Builder{
		KindEpsilonGreedy: epsilonGreedy,
		KindUCB1:          ucb1,
		KindRandom:        random,
		KindLLM:           llm,
	} {
		if err := r.Register(kind, b); err != nil {
			panic(err)
		}
	}
	return r
}

func epsilonGreedy(ctx context.Context, ac config.AgentConfig) (core.Factory, error) {
	var opts []agent.Option
	if ac.Epsilon != nil {
		if *ac.Epsilon < 0 || *ac.Epsilon > 1 {
			return nil, fmt.Errorf("%w: epsilon must be in [0, 1], got %v", core.ErrInvalidConfiguration, *ac.Epsilon)
		}
		opts = append(opts, agent.WithEpsilon(*ac.Epsilon))
	}
	return func(nArms int, seed int64) (core.Agent, error) {
		a, err := agent.NewEpsilonGreedy(nArms, seed, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	}, nil
}

func ucb1(ctx context.Context, ac config.AgentConfig) (core.Factory, error) {
	var opts []agent.Option
	if ac.Confidence != nil {
		if *ac.Confidence < 0 {
			return nil, fmt.Errorf("%w: c must not be negative, got %v", core.ErrInvalidConfiguration, *ac.Confidence)
		}
		opts = append(opts, agent.WithConfidence(*ac.Confidence))
	}
	return func(nArms int, seed int64) (core.Agent, error) {
		a, err := agent.NewUCB1(nArms, seed, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	}, nil
}

func random(ctx context.Context, ac config.AgentConfig) (core.Factory, error) {
	return func(nArms int, seed int64) (core.Agent, error) {
		a, err := agent.NewRandom(nArms, seed)
		if err != nil {
			return nil, err
		}
		return a, nil
	}, nil
}

func llm(ctx context.Context, ac config.AgentConfig) (core.Factory, error) {
	client, err := providers.New(ctx, ac.Provider)
	if err != nil {
		return nil, err
	}
	model := ac.Model
	if model == "" {
		model = defaultModels[ac.Provider]
	}
	opts := []agent.Option{
		agent.WithClient(client),
		agent.WithModel(agent.ModelInfo{Id: model, Config: ac.Config}),
		agent.WithConsultEvery(ac.ConsultEvery),
	}
	return func(nArms int, seed int64) (core.Agent, error) {
		a, err := agent.NewLLMAgent(nArms, seed, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	}, nil
}
