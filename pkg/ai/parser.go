package ai

import (
	"encoding/json"
	"math"
	"strings"

	"game-forge/internal/domain"
)

// ParseOverride достаёт JSON-объект из ответа модели (от первой '{' до последней '}')
// и принимает только поля правильного типа. Если ни одного поля нет, возвращает nil.
func ParseOverride(content string) *domain.ClassifierOverride {
	first := strings.Index(content, "{")
	last := strings.LastIndex(content, "}")
	if first == -1 || last == -1 || last <= first {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(content[first:last+1]), &raw); err != nil {
		return nil
	}

	out := &domain.ClassifierOverride{}
	if s, ok := raw["gameType"].(string); ok {
		if a, known := domain.ParseArchetype(s); known {
			out.GameType = &a
		}
	}
	if b, ok := raw["humanCharacter"].(bool); ok {
		out.HumanCharacter = &b
	}
	if s, ok := raw["theme"].(string); ok {
		out.Theme = &s
	}
	out.SpeedFactor = number(raw["speedFactor"])
	out.DensityFactor = number(raw["densityFactor"])
	out.DifficultyScale = number(raw["difficultyScale"])

	if out.IsEmpty() {
		return nil
	}
	return out
}

// Коэффициенты вне (0, maxFactor] отбрасываются: анализатор не зажимает сложность,
// а генераторы переводят её в целые скорости.
const maxFactor = 10.0

func number(v any) *float64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f > maxFactor {
		return nil
	}
	return &f
}
