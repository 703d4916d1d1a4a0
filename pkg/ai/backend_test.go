package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"game-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenAIBackend(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "AI Game Forge", r.Header.Get("X-Title"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "anthropic/claude-3-haiku",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"gameType\":\"arcade\",\"speedFactor\":1.2}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	cfg := Config{
		Enabled:    true,
		ClientType: ClientTypeOpenAI,
		APIKey:     "test-key",
		BaseURL:    srv.URL + "/v1",
		Model:      "anthropic/claude-3-haiku",
		Timeout:    2 * time.Second,
	}
	c, err := NewClassifier(cfg, zap.NewNop())
	require.NoError(t, err)

	o := c.Classify(context.Background(), "break the bricks", domain.Parameters{})
	require.NotNil(t, o)
	assert.Equal(t, domain.ArchetypeArcade, *o.GameType)
	assert.Equal(t, 1.2, *o.SpeedFactor)

	assert.Equal(t, "anthropic/claude-3-haiku", body["model"])
	assert.EqualValues(t, 200, body["max_tokens"])
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestOpenAIBackend_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
	}))
	defer srv.Close()

	b := NewOpenAIBackend(Config{APIKey: "k", BaseURL: srv.URL, Model: "m"})
	_, err := b.Complete(context.Background(), "sys", "user")
	assert.ErrorIs(t, err, ErrClassifierFailed)

	c := NewLLMClassifier(b, Config{Timeout: time.Second}, zap.NewNop())
	assert.Nil(t, c.Classify(context.Background(), "anything", domain.Parameters{}))
}

func TestOllamaBackend(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3","created_at":"2025-01-01T00:00:00Z","message":{"role":"assistant","content":"{\"gameType\":\"platformer\",\"humanCharacter\":false}"},"done":true,"done_reason":"stop"}` + "\n"))
	}))
	defer srv.Close()

	b, err := NewOllamaBackend(Config{BaseURL: srv.URL + "/v1", Model: "llama3", Timeout: 2 * time.Second})
	require.NoError(t, err)

	c := NewLLMClassifier(b, Config{Timeout: 2 * time.Second}, zap.NewNop())
	o := c.Classify(context.Background(), "hop between ledges", domain.Parameters{Theme: "forest"})
	require.NotNil(t, o)
	assert.Equal(t, domain.ArchetypePlatformer, *o.GameType)
	assert.False(t, *o.HumanCharacter)

	assert.Equal(t, "llama3", body["model"])
	assert.Equal(t, false, body["stream"])
	assert.Equal(t, "json", body["format"])
}

func TestOllamaBackend_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'llama3' not found"}`))
	}))
	defer srv.Close()

	b, err := NewOllamaBackend(Config{BaseURL: srv.URL, Model: "llama3"})
	require.NoError(t, err)
	_, err = b.Complete(context.Background(), "sys", "user")
	assert.ErrorIs(t, err, ErrClassifierFailed)
}
