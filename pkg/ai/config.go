package ai

import "time"

// Типы бэкендов внешнего классификатора.
const (
	ClientTypeOpenAI = "openai"
	ClientTypeOllama = "ollama"
)

// Config - параметры внешнего классификатора.
type Config struct {
	Enabled    bool
	ClientType string
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	// MaxTokens ограничивает ответ модели.
	MaxTokens int
	// MaxPromptTokens - бюджет токенов на текст промпта пользователя.
	MaxPromptTokens int
	// AppTitle уходит в заголовке X-Title (OpenRouter показывает его в статистике).
	AppTitle string
}

func (c Config) withDefaults() Config {
	if c.ClientType == "" {
		c.ClientType = ClientTypeOpenAI
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 200
	}
	if c.MaxPromptTokens <= 0 {
		c.MaxPromptTokens = 512
	}
	if c.AppTitle == "" {
		c.AppTitle = "AI Game Forge"
	}
	return c
}
