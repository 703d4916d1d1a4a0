package mocks

import (
	"context"

	"game-forge/internal/domain"
	"game-forge/internal/rules"
	"game-forge/internal/service"

	"github.com/stretchr/testify/mock"
)

// Mock service.GameGenerationService
type GameGenerationService struct {
	mock.Mock
}

func (m *GameGenerationService) GenerateGame(ctx context.Context, req domain.GenerationRequest) (*domain.GameDefinition, error) {
	args := m.Called(ctx, req)
	def, _ := args.Get(0).(*domain.GameDefinition)
	return def, args.Error(1)
}

func (m *GameGenerationService) Preview(ctx context.Context, req domain.GenerationRequest) (*service.Preview, error) {
	args := m.Called(ctx, req)
	preview, _ := args.Get(0).(*service.Preview)
	return preview, args.Error(1)
}

func (m *GameGenerationService) PlayTicTacToe(board rules.Board, row, col int) (*service.TicTacToeTurn, error) {
	args := m.Called(board, row, col)
	turn, _ := args.Get(0).(*service.TicTacToeTurn)
	return turn, args.Error(1)
}

func (m *GameGenerationService) Archetypes() []domain.Archetype {
	args := m.Called()
	archetypes, _ := args.Get(0).([]domain.Archetype)
	return archetypes
}
