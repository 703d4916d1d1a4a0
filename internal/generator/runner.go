package generator

import (
	"game-forge/internal/analysis"
	"game-forge/internal/domain"
)

const (
	runnerGroundColor = domain.Color(0x8b5a2b)
	runnerGravity     = 1000
	runnerJump        = 520
)

var runnerObstacles = []struct {
	name   string
	shape  string
	width  int
	height int
	color  domain.Color
}{
	{"ob_stick", domain.ShapeRect, 12, 48, 0x5a3e2b},
	{"ob_cone", domain.ShapeTriangle, 36, 50, 0xff7f11},
	{"ob_crate", domain.ShapeRoundedRect, 42, 42, 0x8b4513},
	{"ob_barrel", domain.ShapeCircle, 40, 40, 0x7f8c8d},
}

// RunnerGenerator - бесконечный бег с прыжками через препятствия.
type RunnerGenerator struct{}

func NewRunnerGenerator() *RunnerGenerator { return &RunnerGenerator{} }

func (g *RunnerGenerator) Archetype() domain.Archetype { return domain.ArchetypeRunner }

// Generate всегда рисует бегуна человечком, флаг humanCharacter здесь не влияет.
func (g *RunnerGenerator) Generate(req domain.GenerationRequest, override *domain.ClassifierOverride) domain.GameDefinition {
	tuning := analysis.Analyze(req.Prompt, req.Parameters, override)

	kinds := make([]string, 0, len(runnerObstacles))
	for _, ob := range runnerObstacles {
		kinds = append(kinds, ob.name)
	}

	balancing := &domain.RunnerBalancing{
		HumanPlayer:         true,
		PlayerColor:         tuning.MainColor,
		GroundColor:         runnerGroundColor,
		PlayerStart:         domain.Point{X: 120, Y: 500},
		BaseSpeed:           analysis.Round(260 * tuning.SpeedFactor * tuning.DifficultyScale),
		Gravity:             runnerGravity,
		JumpVelocity:        runnerJump,
		SpawnDelayMs:        clampRound(1100/analysis.Clamp(tuning.DensityFactor, 0.8, 1.6), 450, 1400),
		SpawnX:              840,
		ObstacleKinds:       kinds,
		SpeedRampStep:       4,
		SpeedRampIntervalMs: 2000,
		FrameMs:             16,
	}

	assets := []domain.Asset{
		domain.NewSpriteAsset("runner1", domain.ShapeHuman, 40, 56, tuning.MainColor),
		domain.NewSpriteAsset("runner2", domain.ShapeHuman, 40, 56, tuning.MainColor),
		domain.NewSpriteAsset("ground", domain.ShapeRect, domain.DisplayWidth, 40, runnerGroundColor),
	}
	for _, ob := range runnerObstacles {
		assets = append(assets, domain.NewSpriteAsset(ob.name, ob.shape, ob.width, ob.height, ob.color))
	}
	return newDefinition(domain.ArchetypeRunner, tuning, assets, domain.Balancing{Runner: balancing})
}
