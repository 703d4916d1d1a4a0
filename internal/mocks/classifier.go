package mocks

import (
	"context"

	"game-forge/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock ai.Classifier
type Classifier struct {
	mock.Mock
}

func (m *Classifier) Classify(ctx context.Context, prompt string, params domain.Parameters) *domain.ClassifierOverride {
	args := m.Called(ctx, prompt, params)
	override, _ := args.Get(0).(*domain.ClassifierOverride)
	return override
}
