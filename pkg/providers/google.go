package providers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
}

func Gemini(ctx context.Context, params ProviderParams) (*GeminiClient, error) {
	apiKey := params.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGoogleAI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client: client,
	}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, model string, prompt string) (string, error) {
	parts := []*genai.Part{
		{Text: prompt},
	}
	result, err := c.client.Models.GenerateContent(ctx, model, []*genai.Content{{Parts: parts}}, nil)
	if err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates for model %s", model)
	}
	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String(), nil
}
