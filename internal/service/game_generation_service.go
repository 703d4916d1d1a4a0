package service

import (
	"context"
	"fmt"
	"time"

	"game-forge/internal/analysis"
	"game-forge/internal/classifier"
	"game-forge/internal/domain"
	"game-forge/internal/generator"
	"game-forge/internal/rules"
	"game-forge/pkg/ai"

	"go.uber.org/zap"
)

// Preview - во что превратится промпт, без сборки определения.
type Preview struct {
	Archetype domain.Archetype     `json:"archetype"`
	Tuning    domain.TuningProfile `json:"tuning"`
}

// TicTacToeTurn - результат одного хода в крестики-нолики.
type TicTacToeTurn struct {
	Board        rules.Board          `json:"board"`
	State        rules.TicTacToeState `json:"state"`
	Winner       rules.Mark           `json:"winner"`
	ComputerMove *rules.Cell          `json:"computerMove"`
	Score        int                  `json:"score"`
}

// GameGenerationService - оркестратор синтеза игр.
type GameGenerationService interface {
	GenerateGame(ctx context.Context, req domain.GenerationRequest) (*domain.GameDefinition, error)
	Preview(ctx context.Context, req domain.GenerationRequest) (*Preview, error)
	PlayTicTacToe(board rules.Board, row, col int) (*TicTacToeTurn, error)
	Archetypes() []domain.Archetype
}

type gameGenerationServiceImpl struct {
	classifier ai.Classifier
	registry   *generator.Registry
	delay      time.Duration
	ticTacToe  domain.TicTacToeBalancing
	logger     *zap.Logger
}

// NewGameGenerationService создаёт сервис. classifier может быть nil - тогда мнения нет никогда.
func NewGameGenerationService(
	cls ai.Classifier,
	registry *generator.Registry,
	delay time.Duration,
	logger *zap.Logger,
) GameGenerationService {
	if cls == nil {
		cls = ai.NoopClassifier{}
	}
	// Ход в крестики-нолики не зависит от промпта, берём баланс по умолчанию.
	ticTacToe := domain.TicTacToeBalancing{}
	if def, err := registry.Generate(domain.ArchetypeTicTacToe, domain.GenerationRequest{}, nil); err == nil && def.Balancing.TicTacToe != nil {
		ticTacToe = *def.Balancing.TicTacToe
	}
	return &gameGenerationServiceImpl{
		classifier: cls,
		registry:   registry,
		delay:      delay,
		ticTacToe:  ticTacToe,
		logger:     logger.Named("GameGenerationService"),
	}
}

// GenerateGame ждёт настроенную паузу, спрашивает классификатор и собирает определение.
// Ошибка возможна только при отмене контекста.
func (s *gameGenerationServiceImpl) GenerateGame(ctx context.Context, req domain.GenerationRequest) (*domain.GameDefinition, error) {
	start := time.Now()
	log := s.logger.With(zap.Int("promptLength", len(req.Prompt)))

	if err := s.wait(ctx); err != nil {
		log.Info("Generation cancelled during delay", zap.Error(err))
		return nil, err
	}

	archetype, override := s.resolve(ctx, req)
	def, err := s.registry.Generate(archetype, req, override)
	if err != nil {
		log.Error("Generator lookup failed", zap.String("archetype", archetype.String()), zap.Error(err))
		return nil, fmt.Errorf("generate %s: %w", archetype, err)
	}

	duration := time.Since(start)
	generationsTotal.WithLabelValues(def.Archetype.String()).Inc()
	generationDuration.Observe(duration.Seconds())
	log.Info("Game generated",
		zap.String("classified", archetype.String()),
		zap.String("archetype", def.Archetype.String()),
		zap.String("theme", def.Tuning.Theme),
		zap.Float64("difficultyScale", def.Tuning.DifficultyScale),
		zap.Float64("speedFactor", def.Tuning.SpeedFactor),
		zap.Float64("densityFactor", def.Tuning.DensityFactor),
		zap.Bool("classifierOpinion", override != nil),
		zap.Strings("assets", def.AssetNames()),
		zap.Duration("duration", duration),
	)
	return &def, nil
}

// Preview повторяет анализ GenerateGame без паузы и без сборки ассетов.
// Архетип уточняется так же, как в генераторе головоломок.
func (s *gameGenerationServiceImpl) Preview(ctx context.Context, req domain.GenerationRequest) (*Preview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	archetype, override := s.resolve(ctx, req)
	if archetype == domain.ArchetypePuzzle {
		switch {
		case classifier.IsTicTacToePrompt(req.Prompt):
			archetype = domain.ArchetypeTicTacToe
		case classifier.IsMemoryPrompt(req.Prompt):
			archetype = domain.ArchetypeMemory
		}
	}
	return &Preview{
		Archetype: archetype,
		Tuning:    analysis.Analyze(req.Prompt, req.Parameters, override),
	}, nil
}

// PlayTicTacToe применяет ход человека и, если партия не окончена, ответ компьютера.
func (s *gameGenerationServiceImpl) PlayTicTacToe(board rules.Board, row, col int) (*TicTacToeTurn, error) {
	game, err := rules.NewTicTacToeFromBoard(s.ticTacToe, board)
	if err != nil {
		return nil, err
	}
	computerMove, err := game.Play(row, col)
	if err != nil {
		return nil, err
	}
	return &TicTacToeTurn{
		Board:        game.Board(),
		State:        game.State(),
		Winner:       game.State().Winner(),
		ComputerMove: computerMove,
		Score:        game.Score(),
	}, nil
}

func (s *gameGenerationServiceImpl) Archetypes() []domain.Archetype {
	return s.registry.Archetypes()
}

func (s *gameGenerationServiceImpl) resolve(ctx context.Context, req domain.GenerationRequest) (domain.Archetype, *domain.ClassifierOverride) {
	override := s.classifier.Classify(ctx, req.Prompt, req.Parameters)
	if override.IsEmpty() {
		override = nil
	}
	return classifier.Classify(req.Prompt, override), override
}

func (s *gameGenerationServiceImpl) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
