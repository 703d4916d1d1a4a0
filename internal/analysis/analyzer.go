// Package analysis выводит детерминированный профиль настройки игры из текста промпта.
// Все функции пакета чистые: без I/O, без глобального состояния.
package analysis

import (
	"math"
	"strings"

	"game-forge/internal/domain"
)

// Границы коэффициентов.
const (
	MinFactor         = 0.6
	MaxFactor         = 1.6
	MaxDensityFactor  = 1.8
	MinDuration       = 1
	MaxDuration       = 15
	DefaultDifficulty = "medium"
	DefaultTheme      = "default"
)

var (
	hardWords   = []string{"brutal", "insane", "hard"}
	softWords   = []string{"chill", "casual", "easy"}
	fastWords   = []string{"fast", "speed", "rapid"}
	slowWords   = []string{"slow", "relax"}
	denseWords  = []string{"many", "tons", "swarm"}
	sparseWords = []string{"few", "minimal"}
	humanWords  = []string{"human", "boy", "girl", "man", "woman", "kid", "runner human", "person"}
)

// Clamp ограничивает n отрезком [min, max].
func Clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}

// Round округляет половину вверх (к +inf), как принято в рантайме игр.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// BaseDifficultyScale переводит метку сложности в множитель. Неизвестные метки дают 1.0.
func BaseDifficultyScale(label string) float64 {
	if label == "" {
		label = DefaultDifficulty
	}
	switch strings.ToLower(label) {
	case "easy":
		return 0.75
	case "medium":
		return 1.0
	case "hard":
		return 1.25
	case "expert":
		return 1.5
	default:
		return 1.0
	}
}

// Analyze строит TuningProfile. Поля override, если заданы, побеждают эвристики.
// Функция тотальная: любой вход даёт профиль в допустимых границах.
func Analyze(prompt string, params domain.Parameters, override *domain.ClassifierOverride) domain.TuningProfile {
	if override == nil {
		override = &domain.ClassifierOverride{}
	}
	seed := PromptSeed(prompt)
	p := strings.ToLower(prompt)

	var difficulty float64
	if override.DifficultyScale != nil {
		difficulty = *override.DifficultyScale
	} else {
		difficulty = BaseDifficultyScale(params.Difficulty)
		if containsAny(p, hardWords...) {
			difficulty *= 1.15
		}
		if containsAny(p, softWords...) {
			difficulty *= 0.9
		}
	}

	var speed float64
	if override.SpeedFactor != nil {
		speed = *override.SpeedFactor
	} else {
		speed = 0.8 + float64(seed%41)/100
		if containsAny(p, fastWords...) {
			speed *= 1.15
		}
		if containsAny(p, slowWords...) {
			speed *= 0.9
		}
	}

	var density float64
	if override.DensityFactor != nil {
		density = *override.DensityFactor
	} else {
		density = 0.8 + float64((seed/7)%41)/100
		if containsAny(p, denseWords...) {
			density *= 1.2
		}
		if containsAny(p, sparseWords...) {
			density *= 0.85
		}
	}

	speed = Clamp(speed, MinFactor, MaxFactor)
	density = Clamp(density, MinFactor, MaxFactor)
	density = Clamp(density*DurationFactor(params.SessionMinutes()), MinFactor, MaxDensityFactor)

	theme := resolveTheme(p, params, override)
	mainColor, bgColor := ThemeColors(theme)
	if theme == "" {
		theme = DefaultTheme
	}

	return domain.TuningProfile{
		DifficultyScale: difficulty,
		SpeedFactor:     speed,
		DensityFactor:   density,
		MainColor:       mainColor,
		BgColor:         bgColor,
		Theme:           theme,
	}
}

// DurationFactor масштабирует плотность под длительность сессии в минутах.
func DurationFactor(duration int) float64 {
	d := Clamp(float64(duration), MinDuration, MaxDuration)
	return Clamp(0.9+(d-5)*0.03, 0.7, 1.3)
}

func resolveTheme(lowerPrompt string, params domain.Parameters, override *domain.ClassifierOverride) string {
	// Заданная классификатором тема, даже пустая, закрывает тему из параметров.
	if override.Theme != nil {
		if *override.Theme != "" {
			return *override.Theme
		}
	} else if params.Theme != "" {
		return params.Theme
	}
	switch {
	case strings.Contains(lowerPrompt, "space"):
		return "space"
	case containsAny(lowerPrompt, "forest", "nature"):
		return "nature"
	case strings.Contains(lowerPrompt, "retro"):
		return "retro"
	case strings.Contains(lowerPrompt, "fantasy"):
		return "fantasy"
	case strings.Contains(lowerPrompt, "cyber"):
		return "cyberpunk"
	}
	return ""
}

// IsHumanCharacterRequested - нужен ли человеческий персонаж вместо блока.
func IsHumanCharacterRequested(prompt string, override *domain.ClassifierOverride) bool {
	if override != nil && override.HumanCharacter != nil {
		return *override.HumanCharacter
	}
	return containsAny(strings.ToLower(prompt), humanWords...)
}

// ContainsAny проверяет вхождение любой из фраз в промпт без учёта регистра.
func ContainsAny(prompt string, phrases ...string) bool {
	return containsAny(strings.ToLower(prompt), phrases...)
}

func containsAny(text string, phrases ...string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
