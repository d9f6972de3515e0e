package providers

import (
	"context"
	"fmt"
	"strings"
)

// Client completes a single prompt with the named model
type Client interface {
	Complete(ctx context.Context, model string, prompt string) (string, error)
}

type ProviderParams struct {
	BaseURL string
	APIKey  string
}

type ProviderOption func(*ProviderParams)

func WithBaseURL(baseURL string) ProviderOption {
	return func(p *ProviderParams) {
		p.BaseURL = baseURL
	}
}

func WithAPIKey(apiKey string) ProviderOption {
	return func(p *ProviderParams) {
		p.APIKey = apiKey
	}
}

// Names of the supported providers, as used in configuration files
const (
	NameOpenAI = "openai"
	NameGemini = "gemini"
)

// New returns the client for the named provider. An empty name selects
// OpenAI.
func New(ctx context.Context, name string, opts ...ProviderOption) (Client, error) {
	switch strings.ToLower(name) {
	case "", NameOpenAI:
		return OpenAi(ctx, opts...), nil
	case NameGemini:
		params := &ProviderParams{}
		for _, opt := range opts {
			opt(params)
		}
		c, err := Gemini(ctx, *params)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
