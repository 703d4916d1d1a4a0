package analysis

import (
	"encoding/json"
	"fmt"
	"testing"

	"game-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestHashText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int32
	}{
		{"empty", "", 0},
		{"single char", "a", 97},
		{"word", "hello", 99162322},
		{"collision Aa", "Aa", 2112},
		{"collision BB", "BB", 2112},
		{"non ascii", "é", 233},
		{"surrogate pair", "😀", 1772899},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashText(tt.in))
		})
	}
}

func TestPromptSeed_MinInt32(t *testing.T) {
	require.Equal(t, int32(-2147483648), HashText("polygenelubricants"))
	assert.Equal(t, int64(2147483648), PromptSeed("polygenelubricants"))
}

func TestPromptSeed_NonNegative(t *testing.T) {
	for i := 0; i < 500; i++ {
		s := fmt.Sprintf("prompt number %d with some words", i)
		assert.GreaterOrEqual(t, PromptSeed(s), int64(0), s)
	}
}

func TestBaseDifficultyScale(t *testing.T) {
	assert.Equal(t, 0.75, BaseDifficultyScale("easy"))
	assert.Equal(t, 1.0, BaseDifficultyScale("medium"))
	assert.Equal(t, 1.25, BaseDifficultyScale("HARD"))
	assert.Equal(t, 1.5, BaseDifficultyScale("Expert"))
	assert.Equal(t, 1.0, BaseDifficultyScale("nightmare"))
	assert.Equal(t, 1.0, BaseDifficultyScale(""))
}

func TestAnalyze_Deterministic(t *testing.T) {
	params := domain.Parameters{Difficulty: "hard", Theme: "retro", Duration: ptr(7)}
	a := Analyze("A fast retro shooter with tons of aliens", params, nil)
	b := Analyze("A fast retro shooter with tons of aliens", params, nil)
	assert.Equal(t, a, b)
}

func TestAnalyze_Bounds(t *testing.T) {
	words := []string{"fast", "slow", "many", "few", "brutal", "chill", "space", "swarm", "relax", "rapid"}
	durations := []*int{nil, ptr(0), ptr(-4), ptr(1), ptr(5), ptr(9), ptr(15), ptr(40)}
	for i := 0; i < 300; i++ {
		prompt := fmt.Sprintf("game %d %s %s", i, words[i%len(words)], words[(i*7)%len(words)])
		params := domain.Parameters{Duration: durations[i%len(durations)]}
		tuning := Analyze(prompt, params, nil)

		assert.GreaterOrEqual(t, tuning.SpeedFactor, MinFactor, prompt)
		assert.LessOrEqual(t, tuning.SpeedFactor, MaxFactor, prompt)
		assert.GreaterOrEqual(t, tuning.DensityFactor, MinFactor, prompt)
		assert.LessOrEqual(t, tuning.DensityFactor, MaxDensityFactor, prompt)
		assert.Greater(t, tuning.DifficultyScale, 0.0, prompt)
		assert.NotEmpty(t, tuning.Theme)
	}
}

func TestAnalyze_EmptyPrompt(t *testing.T) {
	tuning := Analyze("", domain.Parameters{}, nil)

	assert.InDelta(t, 0.8, tuning.SpeedFactor, 1e-9)
	// 0.8 * 0.9 для длительности по умолчанию
	assert.InDelta(t, 0.72, tuning.DensityFactor, 1e-9)
	assert.Equal(t, 1.0, tuning.DifficultyScale)
	assert.Equal(t, DefaultTheme, tuning.Theme)
	assert.Equal(t, DefaultMainColor, tuning.MainColor)
	assert.Equal(t, DefaultBgColor, tuning.BgColor)
}

func TestAnalyze_DifficultyKeywords(t *testing.T) {
	t.Run("both multipliers apply independently", func(t *testing.T) {
		tuning := Analyze("a brutal but chill game", domain.Parameters{}, nil)
		assert.InDelta(t, 1.0*1.15*0.9, tuning.DifficultyScale, 1e-9)
	})

	t.Run("keyword stacks on label", func(t *testing.T) {
		tuning := Analyze("really hard", domain.Parameters{Difficulty: "hard"}, nil)
		assert.InDelta(t, 1.25*1.15, tuning.DifficultyScale, 1e-9)
	})

	t.Run("override disables keywords and is not clamped", func(t *testing.T) {
		override := &domain.ClassifierOverride{DifficultyScale: ptr(2.0)}
		tuning := Analyze("brutal insane", domain.Parameters{Difficulty: "easy"}, override)
		assert.Equal(t, 2.0, tuning.DifficultyScale)
	})
}

func TestAnalyze_FactorOverrides(t *testing.T) {
	t.Run("speed override is clamped", func(t *testing.T) {
		override := &domain.ClassifierOverride{SpeedFactor: ptr(3.0)}
		tuning := Analyze("slow", domain.Parameters{}, override)
		assert.Equal(t, MaxFactor, tuning.SpeedFactor)
	})

	t.Run("speed override skips keywords", func(t *testing.T) {
		override := &domain.ClassifierOverride{SpeedFactor: ptr(1.0)}
		tuning := Analyze("fast fast fast", domain.Parameters{}, override)
		assert.Equal(t, 1.0, tuning.SpeedFactor)
	})

	t.Run("density hits the duration ceiling", func(t *testing.T) {
		override := &domain.ClassifierOverride{DensityFactor: ptr(1.6)}
		tuning := Analyze("anything", domain.Parameters{Duration: ptr(15)}, override)
		assert.Equal(t, MaxDensityFactor, tuning.DensityFactor)
	})

	t.Run("density floor", func(t *testing.T) {
		override := &domain.ClassifierOverride{DensityFactor: ptr(0.1)}
		tuning := Analyze("anything", domain.Parameters{Duration: ptr(1)}, override)
		assert.Equal(t, MinFactor, tuning.DensityFactor)
	})
}

func TestDurationFactor(t *testing.T) {
	assert.InDelta(t, 0.78, DurationFactor(0), 1e-9)
	assert.InDelta(t, 0.9, DurationFactor(5), 1e-9)
	assert.InDelta(t, 1.2, DurationFactor(15), 1e-9)
	assert.InDelta(t, 1.2, DurationFactor(60), 1e-9)
	assert.InDelta(t, 0.78, DurationFactor(1), 1e-9)
	assert.InDelta(t, 0.78, DurationFactor(-3), 1e-9)
}

func TestAnalyze_Theme(t *testing.T) {
	tests := []struct {
		name      string
		prompt    string
		params    domain.Parameters
		override  *domain.ClassifierOverride
		wantTheme string
		wantMain  domain.Color
		wantBg    domain.Color
	}{
		{"from prompt forest", "a quiet forest walk", domain.Parameters{}, nil, "nature", 0x2ecc71, 0xe8f5e9},
		{"from prompt cyber", "Cyber city chase", domain.Parameters{}, nil, "cyberpunk", 0x00ffff, 0xeaffff},
		{"prompt order space first", "retro space", domain.Parameters{}, nil, "space", 0x4a90e2, 0xe6f0ff},
		{"param theme wins over prompt", "space", domain.Parameters{Theme: "pastel"}, nil, "pastel", 0xa3c4f3, 0xf7faff},
		{"param theme keeps its case", "", domain.Parameters{Theme: "OCEAN"}, nil, "OCEAN", 0x1ca3ec, 0xe0f7ff},
		{"override wins over param", "", domain.Parameters{Theme: "pastel"}, &domain.ClassifierOverride{Theme: ptr("neon city")}, "neon city", 0x39ff14, 0xf7ffe0},
		{"empty override skips param theme", "", domain.Parameters{Theme: "candy"}, &domain.ClassifierOverride{Theme: ptr("")}, DefaultTheme, DefaultMainColor, DefaultBgColor},
		{"empty override falls to prompt", "a forest trip", domain.Parameters{Theme: "candy"}, &domain.ClassifierOverride{Theme: ptr("")}, "nature", 0x2ecc71, 0xe8f5e9},
		{"unknown theme keeps default palette", "", domain.Parameters{Theme: "gothic"}, nil, "gothic", DefaultMainColor, DefaultBgColor},
		{"nothing at all", "a game", domain.Parameters{}, nil, DefaultTheme, DefaultMainColor, DefaultBgColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := Analyze(tt.prompt, tt.params, tt.override)
			assert.Equal(t, tt.wantTheme, tuning.Theme)
			assert.Equal(t, tt.wantMain, tuning.MainColor)
			assert.Equal(t, tt.wantBg, tuning.BgColor)
		})
	}
}

func TestThemeColors_SunsetAndFantasy(t *testing.T) {
	main, bg := ThemeColors("Sunset Boulevard")
	assert.Equal(t, domain.Color(0xff8c00), main)
	assert.Equal(t, domain.Color(0xfff4e0), bg)

	main, bg = ThemeColors("dark fantasy")
	assert.Equal(t, domain.Color(0x8e44ad), main)
	assert.Equal(t, domain.Color(0xf3e8ff), bg)
}

func TestIsHumanCharacterRequested(t *testing.T) {
	assert.True(t, IsHumanCharacterRequested("a boy jumping on clouds", nil))
	assert.True(t, IsHumanCharacterRequested("PERSON escapes", nil))
	assert.False(t, IsHumanCharacterRequested("a robot on a rocket", nil))

	t.Run("override wins", func(t *testing.T) {
		assert.False(t, IsHumanCharacterRequested("a girl", &domain.ClassifierOverride{HumanCharacter: ptr(false)}))
		assert.True(t, IsHumanCharacterRequested("a robot", &domain.ClassifierOverride{HumanCharacter: ptr(true)}))
	})
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3, Round(2.5))
	assert.Equal(t, 2, Round(2.4999))
	assert.Equal(t, -2, Round(-2.5))
	assert.Equal(t, 12, Round(11.6))
}

func TestAnalyze_Duration(t *testing.T) {
	t.Run("explicit zero is clamped to one minute", func(t *testing.T) {
		zero := Analyze("a game", domain.Parameters{Duration: ptr(0)}, nil)
		one := Analyze("a game", domain.Parameters{Duration: ptr(1)}, nil)
		assert.Equal(t, one, zero)
	})

	t.Run("missing duration means five minutes", func(t *testing.T) {
		missing := Analyze("a game", domain.Parameters{}, nil)
		five := Analyze("a game", domain.Parameters{Duration: ptr(5)}, nil)
		assert.Equal(t, five, missing)
	})

	t.Run("explicit zero survives decoding", func(t *testing.T) {
		var p domain.Parameters
		require.NoError(t, json.Unmarshal([]byte(`{"duration":0}`), &p))
		require.NotNil(t, p.Duration)
		assert.Equal(t, 0, p.SessionMinutes())

		p = domain.Parameters{}
		require.NoError(t, json.Unmarshal([]byte(`{"difficulty":"easy"}`), &p))
		assert.Nil(t, p.Duration)
		assert.Equal(t, domain.DefaultDuration, p.SessionMinutes())
	})
}
