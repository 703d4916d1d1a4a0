package ai

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

const fallbackEncoding = "cl100k_base"

// tokenBudget обрезает промпт до maxTokens токенов.
// Энкодер грузится лениво один раз; если его нет, режем по рунам.
type tokenBudget struct {
	maxTokens int
	load      func() (*tiktoken.Tiktoken, error)
	logger    *zap.Logger

	once    sync.Once
	encoder *tiktoken.Tiktoken
}

func newTokenBudget(model string, maxTokens int, logger *zap.Logger) *tokenBudget {
	return &tokenBudget{
		maxTokens: maxTokens,
		logger:    logger,
		load: func() (*tiktoken.Tiktoken, error) {
			tke, err := tiktoken.EncodingForModel(model)
			if err == nil {
				return tke, nil
			}
			return tiktoken.GetEncoding(fallbackEncoding)
		},
	}
}

// Truncate возвращает промпт в пределах бюджета и число его токенов (0, если не считали).
func (b *tokenBudget) Truncate(prompt string) (string, int) {
	// Токен занимает хотя бы байт, короткие промпты не проверяем.
	if len(prompt) <= b.maxTokens {
		return prompt, 0
	}

	b.once.Do(func() {
		tke, err := b.load()
		if err != nil {
			b.logger.Warn("Could not load tokenizer, truncating prompt by runes", zap.Error(err))
			return
		}
		b.encoder = tke
	})

	if b.encoder == nil {
		runes := []rune(prompt)
		if len(runes) > b.maxTokens {
			runes = runes[:b.maxTokens]
		}
		return string(runes), 0
	}

	tokens := b.encoder.Encode(prompt, nil, nil)
	if len(tokens) <= b.maxTokens {
		return prompt, len(tokens)
	}
	return b.encoder.Decode(tokens[:b.maxTokens]), b.maxTokens
}
