package handler

import (
	"game-forge/internal/domain"
	"game-forge/internal/rules"
)

type generateGameRequest struct {
	Prompt     string            `json:"prompt"`
	Parameters domain.Parameters `json:"parameters"`
}

func (r generateGameRequest) toDomain() domain.GenerationRequest {
	return domain.GenerationRequest{Prompt: r.Prompt, Parameters: r.Parameters}
}

type generateGameResponse struct {
	ID   string                 `json:"id"`
	Game *domain.GameDefinition `json:"game"`
}

type ticTacToeMoveRequest struct {
	Board rules.Board `json:"board"`
	Row   *int        `json:"row" binding:"required"`
	Col   *int        `json:"col" binding:"required"`
}

type archetypesResponse struct {
	Archetypes []domain.Archetype `json:"archetypes"`
}
