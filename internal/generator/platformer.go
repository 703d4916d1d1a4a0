package generator

import (
	"game-forge/internal/analysis"
	"game-forge/internal/domain"
)

const (
	platformerGravity     = 800
	platformerMoveSpeed   = 200
	platformerBaseJump    = 360
	platformerCoinPoints  = 10
	platformColor         = domain.Color(0x8b4513)
	coinColor             = domain.Color(0xffd700)
	platformerMinCoins    = 6
	platformerCoinsAtUnit = 11
	platformerCoinGap     = 70
)

// PlatformerGenerator - сбор монет на статичных платформах.
type PlatformerGenerator struct{}

func NewPlatformerGenerator() *PlatformerGenerator { return &PlatformerGenerator{} }

func (g *PlatformerGenerator) Archetype() domain.Archetype { return domain.ArchetypePlatformer }

func (g *PlatformerGenerator) Generate(req domain.GenerationRequest, override *domain.ClassifierOverride) domain.GameDefinition {
	tuning := analysis.Analyze(req.Prompt, req.Parameters, override)
	human := analysis.IsHumanCharacterRequested(req.Prompt, override)
	density := tuning.DensityFactor

	balancing := &domain.PlatformerBalancing{
		HumanPlayer:   human,
		PlayerColor:   tuning.MainColor,
		PlatformColor: platformColor,
		CoinColor:     coinColor,
		PlayerStart:   domain.Point{X: 100, Y: 450},
		Platforms: []domain.Platform{
			{X: 400, Y: 568, ScaleX: 12.5},
			{X: 600, Y: 400, ScaleX: 1},
			{X: 50, Y: 250, ScaleX: 1},
			{X: 750, Y: 220, ScaleX: 1},
		},
		CoinCount: max(platformerMinCoins, analysis.Round(platformerCoinsAtUnit*density)),
		CoinStart: domain.Point{X: 12, Y: 0},
		CoinStepX: clampRound(platformerCoinGap/analysis.Clamp(density, 0.7, 1.5), 40, 100),
		Gravity:   platformerGravity,
		MoveSpeed: platformerMoveSpeed,
		// Прыжок растёт со сложностью, компенсируя более быстрый мир.
		JumpVelocity:  analysis.Round(platformerBaseJump * tuning.DifficultyScale),
		FallLimitY:    domain.DisplayHeight,
		PointsPerCoin: platformerCoinPoints,
	}

	assets := []domain.Asset{
		playerSprite("player", human, tuning.MainColor, 32, 40, 32),
		domain.NewSpriteAsset("platform", domain.ShapeRect, 64, 32, platformColor),
		domain.NewSpriteAsset("coin", domain.ShapeCircle, 32, 32, coinColor),
	}
	return newDefinition(domain.ArchetypePlatformer, tuning, assets, domain.Balancing{Platformer: balancing})
}
