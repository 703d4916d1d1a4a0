package generator

import (
	"game-forge/internal/analysis"
	"game-forge/internal/domain"
)

const (
	shooterPlayerColor = domain.Color(0x00ff00)
	shooterBulletColor = domain.Color(0xffff00)
	shooterPlayerSpeed = 220
	shooterSpeedCap    = 140
	shooterSpeedStep   = 0.75
	shooterKillPoints  = 100
)

// ShooterGenerator - вертикальный шутер с падающими врагами.
type ShooterGenerator struct{}

func NewShooterGenerator() *ShooterGenerator { return &ShooterGenerator{} }

func (g *ShooterGenerator) Archetype() domain.Archetype { return domain.ArchetypeShooter }

func (g *ShooterGenerator) Generate(req domain.GenerationRequest, override *domain.ClassifierOverride) domain.GameDefinition {
	tuning := analysis.Analyze(req.Prompt, req.Parameters, override)
	human := analysis.IsHumanCharacterRequested(req.Prompt, override)

	balancing := &domain.ShooterBalancing{
		HumanPlayer:    human,
		PlayerColor:    shooterPlayerColor,
		EnemyColor:     tuning.MainColor,
		BulletColor:    shooterBulletColor,
		PlayerStart:    domain.Point{X: 400, Y: 550},
		PlayerSpeed:    shooterPlayerSpeed,
		BaseEnemySpeed: analysis.Round(16*tuning.SpeedFactor*tuning.DifficultyScale + 16),
		EnemySpeedCap:  shooterSpeedCap,
		EnemySpeedStep: shooterSpeedStep,
		SpawnDelayMs:   clampRound(1100/analysis.Clamp(tuning.DensityFactor, 0.7, 1.5), 450, 1400),
		SpawnMinX:      50,
		SpawnMaxX:      750,
		PointsPerKill:  shooterKillPoints,
	}

	assets := []domain.Asset{
		playerSprite("player", human, shooterPlayerColor, 32, 38, 32),
		domain.NewSpriteAsset("enemy", domain.ShapeRect, 24, 24, tuning.MainColor),
		domain.NewSpriteAsset("bullet", domain.ShapeRect, 8, 16, shooterBulletColor),
	}
	return newDefinition(domain.ArchetypeShooter, tuning, assets, domain.Balancing{Shooter: balancing})
}
