package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/40min/flocus-sub000/internal/core/ports"
)

const defaultModel = "gemini-2.0-flash"

// GeminiGenerator backs the text-generation port with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ ports.TextGenerator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
