package generator

import (
	"game-forge/internal/analysis"
	"game-forge/internal/domain"
)

// TicTacToeGenerator - крестики-нолики против компьютера.
type TicTacToeGenerator struct{}

func NewTicTacToeGenerator() *TicTacToeGenerator { return &TicTacToeGenerator{} }

func (g *TicTacToeGenerator) Archetype() domain.Archetype { return domain.ArchetypeTicTacToe }

func (g *TicTacToeGenerator) Generate(req domain.GenerationRequest, override *domain.ClassifierOverride) domain.GameDefinition {
	tuning := analysis.Analyze(req.Prompt, req.Parameters, override)
	balancing := &domain.TicTacToeBalancing{
		AccentColor:     tuning.MainColor,
		CellSize:        140,
		ComputerDelayMs: 300,
		WinScore:        1000,
		LossScore:       100,
		DrawScore:       500,
	}
	// Сетка и знаки рисуются линиями и текстом, текстур нет.
	return newDefinition(domain.ArchetypeTicTacToe, tuning, nil, domain.Balancing{TicTacToe: balancing})
}
