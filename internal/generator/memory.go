package generator

import (
	"fmt"

	"game-forge/internal/analysis"
	"game-forge/internal/domain"
)

const (
	memoryRows      = 4
	memoryCols      = 4
	memoryBackColor = domain.Color(0x2d2f36)
)

var memoryFacePalette = []domain.Color{0xff6b6b, 0x4a90e2, 0x2ecc71, 0xf1c40f, 0x9b59b6, 0xe67e22, 0x1abc9c, 0xe84393, 0x00cec9}

// MemoryGenerator - поиск пар на поле 4x4.
type MemoryGenerator struct{}

func NewMemoryGenerator() *MemoryGenerator { return &MemoryGenerator{} }

func (g *MemoryGenerator) Archetype() domain.Archetype { return domain.ArchetypeMemory }

func (g *MemoryGenerator) Generate(req domain.GenerationRequest, override *domain.ClassifierOverride) domain.GameDefinition {
	tuning := analysis.Analyze(req.Prompt, req.Parameters, override)
	pairs := memoryRows * memoryCols / 2

	// Первый цвет лица всегда цвет темы.
	faces := make([]domain.Color, 0, len(memoryFacePalette)+1)
	faces = append(faces, tuning.MainColor)
	faces = append(faces, memoryFacePalette...)

	balancing := &domain.MemoryBalancing{
		Rows:            memoryRows,
		Cols:            memoryCols,
		Pairs:           pairs,
		PreviewMs:       3000,
		MismatchDelayMs: 650,
		BackColor:       memoryBackColor,
		FaceColors:      faces,
		BaseScore:       1000,
		PenaltyPerMove:  12,
		MinScore:        100,
	}

	assets := make([]domain.Asset, 0, pairs+1)
	assets = append(assets, domain.NewSpriteAsset("card_back", domain.ShapeRoundedRect, 100, 120, memoryBackColor))
	for i := 0; i < pairs; i++ {
		assets = append(assets, domain.NewSpriteAsset(fmt.Sprintf("card_front_%d", i), domain.ShapeRoundedRect, 100, 120, faces[i%len(faces)]))
	}
	return newDefinition(domain.ArchetypeMemory, tuning, assets, domain.Balancing{Memory: balancing})
}
