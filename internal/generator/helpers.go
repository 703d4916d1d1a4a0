package generator

import (
	"game-forge/internal/analysis"
	"game-forge/internal/domain"
)

// clampRound = clamp(round(x), min, max) для целочисленных констант баланса.
func clampRound(x float64, min, max int) int {
	n := analysis.Round(x)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// playerSprite рисует человечка, если он запрошен, иначе цветной блок.
func playerSprite(name string, human bool, color domain.Color, humanW, humanH, blockSize int) domain.Asset {
	if human {
		return domain.NewSpriteAsset(name, domain.ShapeHuman, humanW, humanH, color)
	}
	return domain.NewSpriteAsset(name, domain.ShapeRect, blockSize, blockSize, color)
}
