package providers

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client *openai.Client
}

// Clients are shared per (base URL, key) so every agent built from the same
// configuration reuses one HTTP client.
var (
	mu      sync.Mutex
	clients = make(map[ProviderParams]*OpenAIClient)
)

func newOpenAIClient(params ProviderParams) *OpenAIClient {
	var client *openai.Client
	if params.APIKey != "" {
		client = openai.NewClient(
			option.WithAPIKey(params.APIKey),
			option.WithBaseURL(params.BaseURL),
		)
	} else {
		client = openai.NewClient(
			option.WithBaseURL(params.BaseURL),
		)
	}
	log.Println("Using Base URL", params.BaseURL)
	return &OpenAIClient{
		client: client,
	}
}

func OpenAi(ctx context.Context, opts ...ProviderOption) *OpenAIClient {
	params := &ProviderParams{}
	for _, opt := range opts {
		opt(params)
	}

	// Set defaults and environment fallbacks
	if params.BaseURL == "" {
		params.BaseURL = os.Getenv("OPENAI_API_BASE_URL")
		if params.BaseURL == "" {
			params.BaseURL = "https://api.openai.com/v1/"
		}
	}
	if params.APIKey == "" {
		params.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	mu.Lock()
	defer mu.Unlock()
	if c, ok := clients[*params]; ok {
		return c
	}
	c := newOpenAIClient(*params)
	clients[*params] = c
	return c
}

func (c *OpenAIClient) Complete(ctx context.Context, model string, prompt string) (string, error) {
	chatCompletion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model: openai.F(model),
	})
	if err != nil {
		return "", err
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices for model %s", model)
	}
	return chatCompletion.Choices[0].Message.Content, nil
}
