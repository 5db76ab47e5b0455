package questiongen

import (
	"context"
	"errors"
	"fmt"

	"github.com/thinki-app/thinki-lambda/internal/config"
	"google.golang.org/genai"
)

// Provider is the opaque model capability: prompt text in, response text
// out. Provider errors propagate to the caller unchanged; there is no retry
// or timeout policy at this layer.
type Provider interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a provider on the Gemini API using the
// GEMINI_API_KEY and GEMINI_MODEL settings from config.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	if config.GeminiAPIKey() == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiProvider{client: client, model: config.GeminiModel()}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[QUESTIONGEN] raw model response:\n%s", raw)

	if raw == "" {
		return "", errors.New("empty response from model")
	}

	return raw, nil
}
