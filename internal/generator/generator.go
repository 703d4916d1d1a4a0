// Package generator собирает GameDefinition для каждого архетипа.
// Каждый генератор сначала считает TuningProfile и затем запекает все константы баланса
// в определение, так что рантайму не нужно знать ничего сверх него.
package generator

import (
	"errors"
	"fmt"

	"game-forge/internal/domain"
)

// ErrUnknownArchetype - для архетипа не зарегистрирован генератор.
var ErrUnknownArchetype = errors.New("unknown archetype")

// Generator строит определение игры одного архетипа.
type Generator interface {
	Archetype() domain.Archetype
	Generate(req domain.GenerationRequest, override *domain.ClassifierOverride) domain.GameDefinition
}

// Registry - неизменяемый после создания набор генераторов; безопасен для конкурентного чтения.
type Registry struct {
	generators map[domain.Archetype]Generator
	order      []domain.Archetype
}

// NewRegistry регистрирует все встроенные генераторы.
func NewRegistry() *Registry {
	ticTacToe := NewTicTacToeGenerator()
	memory := NewMemoryGenerator()

	r := &Registry{generators: make(map[domain.Archetype]Generator)}
	r.register(NewPlatformerGenerator())
	r.register(NewShooterGenerator())
	r.register(NewPuzzleGenerator(ticTacToe, memory))
	r.register(ticTacToe)
	r.register(memory)
	r.register(NewArcadeGenerator())
	r.register(NewRunnerGenerator())
	return r
}

func (r *Registry) register(g Generator) {
	a := g.Archetype()
	if _, exists := r.generators[a]; !exists {
		r.order = append(r.order, a)
	}
	r.generators[a] = g
}

// Get возвращает генератор архетипа.
func (r *Registry) Get(a domain.Archetype) (Generator, bool) {
	g, ok := r.generators[a]
	return g, ok
}

// Archetypes - зарегистрированные архетипы в порядке регистрации.
func (r *Registry) Archetypes() []domain.Archetype {
	out := make([]domain.Archetype, len(r.order))
	copy(out, r.order)
	return out
}

// Generate передаёт запрос генератору архетипа a.
func (r *Registry) Generate(a domain.Archetype, req domain.GenerationRequest, override *domain.ClassifierOverride) (domain.GameDefinition, error) {
	g, ok := r.generators[a]
	if !ok {
		return domain.GameDefinition{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, a)
	}
	return g.Generate(req, override), nil
}

// newDefinition заполняет общие поля определения.
func newDefinition(a domain.Archetype, tuning domain.TuningProfile, assets []domain.Asset, balancing domain.Balancing) domain.GameDefinition {
	if assets == nil {
		assets = []domain.Asset{}
	}
	return domain.GameDefinition{
		Archetype: a,
		Tuning:    tuning,
		Assets:    assets,
		Balancing: balancing,
		Config:    domain.NewDisplayConfig(a),
	}
}
