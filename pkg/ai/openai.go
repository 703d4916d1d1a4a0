package ai

import (
	"context"
	"fmt"
	"net/http"

	openaigo "github.com/sashabaranov/go-openai"
)

// OpenAIBackend работает с любым OpenAI-совместимым API (по умолчанию OpenRouter).
type OpenAIBackend struct {
	client    *openaigo.Client
	model     string
	maxTokens int
}

func NewOpenAIBackend(cfg Config) *OpenAIBackend {
	cfg = cfg.withDefaults()
	openaiConfig := openaigo.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		openaiConfig.BaseURL = cfg.BaseURL
	}
	openaiConfig.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &titleTransport{title: cfg.AppTitle, next: http.DefaultTransport},
	}
	return &OpenAIBackend{
		client:    openaigo.NewClientWithConfig(openaiConfig),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

func (b *OpenAIBackend) Name() string { return ClientTypeOpenAI }

func (b *OpenAIBackend) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model: b.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleSystem, Content: system},
			{Role: openaigo.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   b.maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrClassifierFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// titleTransport добавляет заголовок X-Title к каждому запросу.
type titleTransport struct {
	title string
	next  http.RoundTripper
}

func (t *titleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-Title", t.title)
	return t.next.RoundTrip(req)
}
