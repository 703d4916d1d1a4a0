package analysis

import (
	"strings"

	"game-forge/internal/domain"
)

const (
	DefaultMainColor domain.Color = 0x4a90e2
	DefaultBgColor   domain.Color = 0xf9fafb
)

type paletteEntry struct {
	keys []string
	main domain.Color
	bg   domain.Color
}

// Порядок важен: побеждает первое совпадение подстроки.
var palette = []paletteEntry{
	{keys: []string{"space"}, main: 0x4a90e2, bg: 0xe6f0ff},
	{keys: []string{"fantasy"}, main: 0x8e44ad, bg: 0xf3e8ff},
	{keys: []string{"cyber"}, main: 0x00ffff, bg: 0xeaffff},
	{keys: []string{"nature", "forest"}, main: 0x2ecc71, bg: 0xe8f5e9},
	{keys: []string{"retro"}, main: 0xff6b6b, bg: 0xfff1f2},
	{keys: []string{"ocean"}, main: 0x1ca3ec, bg: 0xe0f7ff},
	{keys: []string{"neon"}, main: 0x39ff14, bg: 0xf7ffe0},
	{keys: []string{"candy"}, main: 0xff69b4, bg: 0xfff0f7},
	{keys: []string{"sunset"}, main: 0xff8c00, bg: 0xfff4e0},
	{keys: []string{"pastel"}, main: 0xa3c4f3, bg: 0xf7faff},
}

// ThemeColors подбирает основной и фоновый цвет по тексту темы.
func ThemeColors(theme string) (main, bg domain.Color) {
	t := strings.ToLower(theme)
	for _, entry := range palette {
		if containsAny(t, entry.keys...) {
			return entry.main, entry.bg
		}
	}
	return DefaultMainColor, DefaultBgColor
}
