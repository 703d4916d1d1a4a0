package generator

import (
	"fmt"

	"game-forge/internal/analysis"
	"game-forge/internal/classifier"
	"game-forge/internal/domain"
)

const (
	puzzleGridSize     = 4
	puzzleTileSize     = 100
	puzzleTileColor    = domain.Color(0x4a90e2)
	puzzleEmptyColor   = domain.Color(0x333333)
	puzzleShuffleMoves = 1000
)

// PuzzleGenerator - "пятнашки". Промпты про крестики-нолики и поиск пар
// уходят в соответствующие генераторы.
type PuzzleGenerator struct {
	ticTacToe Generator
	memory    Generator
}

func NewPuzzleGenerator(ticTacToe, memory Generator) *PuzzleGenerator {
	return &PuzzleGenerator{ticTacToe: ticTacToe, memory: memory}
}

func (g *PuzzleGenerator) Archetype() domain.Archetype { return domain.ArchetypePuzzle }

func (g *PuzzleGenerator) Generate(req domain.GenerationRequest, override *domain.ClassifierOverride) domain.GameDefinition {
	switch {
	case classifier.IsTicTacToePrompt(req.Prompt):
		return g.ticTacToe.Generate(req, override)
	case classifier.IsMemoryPrompt(req.Prompt):
		return g.memory.Generate(req, override)
	}

	tuning := analysis.Analyze(req.Prompt, req.Parameters, override)
	balancing := &domain.PuzzleBalancing{
		GridSize:     puzzleGridSize,
		TileSize:     puzzleTileSize,
		TileColor:    puzzleTileColor,
		ShuffleMoves: puzzleShuffleMoves,
		MaxScore:     1000,
		MovePenalty:  10,
		MinScore:     100,
	}

	tiles := puzzleGridSize*puzzleGridSize - 1
	assets := make([]domain.Asset, 0, tiles+1)
	for i := 1; i <= tiles; i++ {
		assets = append(assets, domain.NewSpriteAsset(fmt.Sprintf("tile%d", i), domain.ShapeRoundedRect, 90, 90, puzzleTileColor))
	}
	assets = append(assets, domain.NewSpriteAsset("empty", domain.ShapeRoundedRect, 90, 90, puzzleEmptyColor))

	return newDefinition(domain.ArchetypePuzzle, tuning, assets, domain.Balancing{Puzzle: balancing})
}
