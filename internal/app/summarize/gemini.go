package summarize

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiProvider generates notes with the Gemini API. Safety blocks and
// empty candidates are detected here and surfaced as ordinary errors so
// the failover can move to the next provider.
type GeminiProvider struct {
	apiKey string
	model  string
	logger *zap.Logger
}

// NewGeminiProvider creates a Gemini backed provider.
func NewGeminiProvider(apiKey, model string, logger *zap.Logger) *GeminiProvider {
	if model == "" {
		model = "gemini-2.5-pro"
	}
	return &GeminiProvider{apiKey: apiKey, model: model, logger: logger}
}

func (g *GeminiProvider) Name() string { return "gemini" }

// Summarize sends the prompt and returns the generated Markdown.
func (g *GeminiProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create Gemini client: %w", err)
	}

	g.logger.Debug("requesting Gemini generation", zap.String("model", g.model))

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("request blocked by Gemini safety filter: %s", result.PromptFeedback.BlockReason)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	return text.String(), nil
}
