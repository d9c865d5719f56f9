package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// MistralProvider generates notes through the Mistral chat-completions
// endpoint. HTTP status handling and the choices payload shape stay
// inside this adapter.
type MistralProvider struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
	logger   *zap.Logger
}

// NewMistralProvider creates a Mistral backed provider.
func NewMistralProvider(endpoint, apiKey, model string, logger *zap.Logger) *MistralProvider {
	if endpoint == "" {
		endpoint = "https://api.mistral.ai/v1/chat/completions"
	}
	if model == "" {
		model = "mistral-medium"
	}
	return &MistralProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: 5 * time.Minute},
		logger:   logger,
	}
}

func (m *MistralProvider) Name() string { return "mistral" }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize posts the prompt and returns the first choice's content.
func (m *MistralProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: m.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are an expert assistant for producing detailed, well-organized lecture notes."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	m.logger.Debug("requesting Mistral completion", zap.String("model", m.model))

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Mistral request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Mistral responded with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode Mistral response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from Mistral")
	}

	return result.Choices[0].Message.Content, nil
}
