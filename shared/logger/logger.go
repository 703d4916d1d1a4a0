// Package logger строит zap.Logger сервиса по настройкам из окружения.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config содержит настройки для логгера.
type Config struct {
	Level      string // debug, info, warn, error
	Encoding   string // json или console
	OutputPath string // пусто - stdout
	Service    string // попадает в каждую запись полем "service"
	// Development включает caller, стектрейсы на warn и цветные уровни в console.
	Development bool
}

// New создает zap.Logger по конфигурации.
func New(cfg Config) (*zap.Logger, error) {
	logger, _, err := Build(cfg)
	return logger, err
}

// Build создает логгер и возвращает его уровень. Уровень можно менять на лету:
// zap.AtomicLevel реализует http.Handler (GET - текущий, PUT {"level":"debug"} - новый).
func Build(cfg Config) (*zap.Logger, zap.AtomicLevel, error) {
	level := parseLevel(cfg.Level)
	encoding := normalizeEncoding(cfg.Encoding)

	zapConfig := zap.Config{
		Level:             level,
		Development:       cfg.Development,
		DisableCaller:     !cfg.Development,
		DisableStacktrace: !cfg.Development,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig(encoding, cfg.Development),
		OutputPaths:       []string{outputPath(cfg.OutputPath)},
		ErrorOutputPaths:  []string{"stderr"},
	}
	if cfg.Service != "" {
		zapConfig.InitialFields = map[string]interface{}{"service": cfg.Service}
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, level, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, level, nil
}

// parseLevel: пустой уровень - info, неизвестный - info с предупреждением в stderr.
func parseLevel(raw string) zap.AtomicLevel {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return level
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		// Логгера ещё нет, пишем в stderr.
		fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'. Error: %v\n", raw, err)
		level.SetLevel(zap.InfoLevel)
	}
	return level
}

func normalizeEncoding(raw string) string {
	if enc := strings.ToLower(raw); enc == "console" {
		return enc
	}
	return "json"
}

func encoderConfig(encoding string, development bool) zapcore.EncoderConfig {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if development && encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return encoderCfg
}

func outputPath(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
