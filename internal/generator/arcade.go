package generator

import (
	"game-forge/internal/analysis"
	"game-forge/internal/domain"
)

const (
	arcadeBallColor   = domain.Color(0xffffff)
	arcadeBrickColor  = domain.Color(0xff6b6b)
	arcadePaddleSpeed = 300
)

// ArcadeGenerator - арканоид: ракетка, мяч и стена кирпичей.
type ArcadeGenerator struct{}

func NewArcadeGenerator() *ArcadeGenerator { return &ArcadeGenerator{} }

func (g *ArcadeGenerator) Archetype() domain.Archetype { return domain.ArchetypeArcade }

func (g *ArcadeGenerator) Generate(req domain.GenerationRequest, override *domain.ClassifierOverride) domain.GameDefinition {
	tuning := analysis.Analyze(req.Prompt, req.Parameters, override)
	density := tuning.DensityFactor

	balancing := &domain.ArcadeBalancing{
		PaddleColor:    tuning.MainColor,
		BallColor:      arcadeBallColor,
		BrickColor:     arcadeBrickColor,
		PaddleStart:    domain.Point{X: 400, Y: 550},
		PaddleSpeed:    arcadePaddleSpeed,
		BallStart:      domain.Point{X: 400, Y: 300},
		BallSpeed:      analysis.Round(180 * tuning.SpeedFactor * tuning.DifficultyScale),
		Rows:           clampRound(5*density, 3, 8),
		Cols:           clampRound(10*analysis.Clamp(density, 0.8, 1.4), 7, 12),
		BrickOrigin:    domain.Point{X: 80, Y: 80},
		BrickSpacingX:  80,
		BrickSpacingY:  40,
		SpeedIncrement: 5,
		PaddleSpin:     5,
		PointsPerBrick: 10,
	}

	assets := []domain.Asset{
		domain.NewSpriteAsset("paddle", domain.ShapeRect, 100, 20, tuning.MainColor),
		domain.NewSpriteAsset("ball", domain.ShapeCircle, 20, 20, arcadeBallColor),
		domain.NewSpriteAsset("brick", domain.ShapeRect, 75, 30, arcadeBrickColor),
	}
	return newDefinition(domain.ArchetypeArcade, tuning, assets, domain.Balancing{Arcade: balancing})
}
