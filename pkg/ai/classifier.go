// Package ai - адаптер внешнего LLM-классификатора промптов.
// Классификатор только подсказывает: любая ошибка превращается в "нет мнения" (nil).
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"game-forge/internal/domain"

	"go.uber.org/zap"
)

// ErrClassifierFailed - запрос к модели не удался.
var ErrClassifierFailed = errors.New("classifier request failed")

const systemPrompt = "You classify a game idea prompt into a JSON object with fields: gameType, humanCharacter, theme, speedFactor, densityFactor, difficultyScale. Respond with ONLY JSON. Valid gameType values: runner, platformer, shooter, puzzle, arcade, tictactoe."

const exampleResponse = `{"gameType":"runner","humanCharacter":true,"theme":"neon","speedFactor":1.1,"densityFactor":0.9,"difficultyScale":1.0}`

// Classifier возвращает подсказки по промпту или nil, если мнения нет.
// Реализации не возвращают ошибок и не паникуют.
type Classifier interface {
	Classify(ctx context.Context, prompt string, params domain.Parameters) *domain.ClassifierOverride
}

// ChatBackend отправляет один chat-запрос и возвращает текст ответа.
type ChatBackend interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}

// NewClassifier выбирает реализацию по конфигурации.
// Выключенный классификатор или пустой ключ для openai дают no-op.
func NewClassifier(cfg Config, logger *zap.Logger) (Classifier, error) {
	cfg = cfg.withDefaults()
	log := logger.Named("classifier")

	if !cfg.Enabled {
		log.Info("External classifier disabled")
		return NoopClassifier{}, nil
	}

	var backend ChatBackend
	switch strings.ToLower(cfg.ClientType) {
	case ClientTypeOpenAI:
		if cfg.APIKey == "" {
			log.Warn("AI API key is not set, external classifier disabled")
			return NoopClassifier{}, nil
		}
		backend = NewOpenAIBackend(cfg)
	case ClientTypeOllama:
		b, err := NewOllamaBackend(cfg)
		if err != nil {
			return nil, err
		}
		backend = b
	default:
		return nil, fmt.Errorf("unknown AI client type: '%s'", cfg.ClientType)
	}

	log.Info("External classifier enabled",
		zap.String("backend", backend.Name()),
		zap.String("baseURL", cfg.BaseURL),
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout),
	)
	return NewLLMClassifier(backend, cfg, logger), nil
}

// NoopClassifier никогда не имеет мнения.
type NoopClassifier struct{}

func (NoopClassifier) Classify(context.Context, string, domain.Parameters) *domain.ClassifierOverride {
	return nil
}

// LLMClassifier спрашивает модель через ChatBackend.
type LLMClassifier struct {
	backend ChatBackend
	timeout time.Duration
	budget  *tokenBudget
	logger  *zap.Logger
}

func NewLLMClassifier(backend ChatBackend, cfg Config, logger *zap.Logger) *LLMClassifier {
	cfg = cfg.withDefaults()
	return &LLMClassifier{
		backend: backend,
		timeout: cfg.Timeout,
		budget:  newTokenBudget(cfg.Model, cfg.MaxPromptTokens, logger),
		logger:  logger.Named("classifier"),
	}
}

// Classify делает ровно один запрос без повторов.
func (c *LLMClassifier) Classify(ctx context.Context, prompt string, params domain.Parameters) (override *domain.ClassifierOverride) {
	backend := c.backend.Name()
	log := c.logger.With(zap.String("backend", backend))

	defer func() {
		if r := recover(); r != nil {
			log.Error("Classifier panicked", zap.Any("panic", r))
			classifierRequestsTotal.WithLabelValues(backend, statusPanic).Inc()
			override = nil
		}
	}()

	userMessage := c.buildUserMessage(prompt, params)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	content, err := c.backend.Complete(ctx, systemPrompt, userMessage)
	duration := time.Since(start)
	classifierRequestDuration.WithLabelValues(backend).Observe(duration.Seconds())

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Classifier request timed out", zap.Duration("timeout", c.timeout), zap.Duration("duration", duration))
		} else {
			log.Warn("Classifier request failed", zap.Duration("duration", duration), zap.Error(err))
		}
		classifierRequestsTotal.WithLabelValues(backend, statusError).Inc()
		return nil
	}
	if strings.TrimSpace(content) == "" {
		log.Warn("Classifier returned empty response", zap.Duration("duration", duration))
		classifierRequestsTotal.WithLabelValues(backend, statusEmpty).Inc()
		return nil
	}

	override = ParseOverride(content)
	if override == nil {
		log.Debug("Classifier response has no usable fields", zap.String("content", content))
		classifierRequestsTotal.WithLabelValues(backend, statusUnparsed).Inc()
		return nil
	}

	classifierRequestsTotal.WithLabelValues(backend, statusSuccess).Inc()
	log.Debug("Classifier responded", zap.Duration("duration", duration), zap.Any("override", override))
	return override
}

func (c *LLMClassifier) buildUserMessage(prompt string, params domain.Parameters) string {
	prompt, tokens := c.budget.Truncate(prompt)
	if tokens > 0 {
		classifierPromptTokens.Observe(float64(tokens))
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		paramsJSON = []byte("{}")
	}

	var sb strings.Builder
	sb.WriteString("Prompt: ")
	sb.WriteString(prompt)
	sb.WriteString("\nParameters: ")
	sb.Write(paramsJSON)
	sb.WriteString("\nReturn ONLY JSON like:\n")
	sb.WriteString(exampleResponse)
	return sb.String()
}
