package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"game-forge/pkg/ai"
	"game-forge/shared/utils"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const aiAPIKeySecret = "ai_api_key"

// Config - конфигурация сервиса из переменных окружения.
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`

	// Искусственная пауза перед синтезом; 0 отключает.
	GenerationDelay time.Duration `envconfig:"GENERATION_DELAY" default:"2s"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	ClassifierEnabled bool          `envconfig:"CLASSIFIER_ENABLED" default:"false"`
	AIClientType      string        `envconfig:"AI_CLIENT_TYPE" default:"openai"`
	AIBaseURL         string        `envconfig:"AI_BASE_URL" default:"https://openrouter.ai/api/v1"`
	AIModel           string        `envconfig:"AI_MODEL" default:"anthropic/claude-3-haiku"`
	AITimeout         time.Duration `envconfig:"AI_TIMEOUT" default:"10s"`
	AIMaxTokens       int           `envconfig:"AI_MAX_TOKENS" default:"200"`
	AIMaxPromptTokens int           `envconfig:"AI_MAX_PROMPT_TOKENS" default:"512"`
	// Из Docker secret ai_api_key.
	AIAPIKey string `ignored:"true"`
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// GetAllowedOrigins разбирает CORS_ALLOWED_ORIGINS через запятую.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",") {
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// ClassifierConfig собирает настройки внешнего классификатора.
func (c *Config) ClassifierConfig() ai.Config {
	return ai.Config{
		Enabled:         c.ClassifierEnabled,
		ClientType:      c.AIClientType,
		APIKey:          c.AIAPIKey,
		BaseURL:         c.AIBaseURL,
		Model:           c.AIModel,
		Timeout:         c.AITimeout,
		MaxTokens:       c.AIMaxTokens,
		MaxPromptTokens: c.AIMaxPromptTokens,
	}
}

// LoadConfig читает .env (если есть), переменные окружения и секреты.
// Отсутствующий секрет ai_api_key не ошибка: классификатор просто выключится.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
			} else {
				log.Printf("Loaded configuration from %s", envFilePath)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.GenerationDelay < 0 {
		return nil, fmt.Errorf("GENERATION_DELAY must not be negative, got %v", cfg.GenerationDelay)
	}

	apiKey, found, err := utils.ReadOptionalSecret(aiAPIKeySecret)
	if err != nil {
		return nil, err
	}
	cfg.AIAPIKey = apiKey

	log.Printf("Configuration loaded:")
	log.Printf("  Env: %s", cfg.Env)
	log.Printf("  Server Port: %s", cfg.ServerPort)
	log.Printf("  Log Level: %s (%s)", cfg.LogLevel, cfg.LogEncoding)
	log.Printf("  Generation Delay: %v", cfg.GenerationDelay)
	log.Printf("  CORS Allowed Origins: %v", cfg.GetAllowedOrigins())
	log.Printf("  Classifier Enabled: %t", cfg.ClassifierEnabled)
	log.Printf("  AI Client Type: %s", cfg.AIClientType)
	log.Printf("  AI Base URL: %s", cfg.AIBaseURL)
	log.Printf("  AI Model: %s", cfg.AIModel)
	log.Printf("  AI Timeout: %v", cfg.AITimeout)
	if found {
		log.Println("  AI API Key: [LOADED]")
	} else {
		log.Println("  AI API Key: [NOT SET]")
	}

	return &cfg, nil
}
