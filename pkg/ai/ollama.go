package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// OllamaBackend ходит в нативный /api/chat локальной Ollama.
type OllamaBackend struct {
	client    *api.Client
	model     string
	maxTokens int
}

func NewOllamaBackend(cfg Config) (*OllamaBackend, error) {
	cfg = cfg.withDefaults()

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/v1")
	baseURL = strings.TrimSuffix(baseURL, "/")
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Ollama base URL '%s': %w", baseURL, err)
	}

	return &OllamaBackend{
		client:    api.NewClient(parsedURL, &http.Client{Timeout: cfg.Timeout}),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

func (b *OllamaBackend) Name() string { return ClientTypeOllama }

func (b *OllamaBackend) Complete(ctx context.Context, system, user string) (string, error) {
	req := &api.ChatRequest{
		Model: b.model,
		Messages: []api.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: func(b bool) *bool { return &b }(false),
		Format: json.RawMessage(`"json"`),
		Options: map[string]interface{}{
			"temperature": 0,
			"num_predict": b.maxTokens,
		},
	}

	var content strings.Builder
	err := b.client.Chat(ctx, req, func(r api.ChatResponse) error {
		content.WriteString(r.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrClassifierFailed, err)
	}
	return content.String(), nil
}
