// Package classifier выбирает архетип игры по промпту и мнению внешнего классификатора.
package classifier

import (
	"game-forge/internal/analysis"
	"game-forge/internal/domain"
)

var (
	ticTacToePhrases = []string{"tic tac toe", "tictactoe", "tic-tac-toe", "noughts and crosses", "x and o", "x&o"}
	memoryPhrases    = []string{"memory", "match", "pairs", "concentration"}
	runnerPhrases    = []string{"runner", "endless runner", "running", "dash"}
	platformPhrases  = []string{"platform", "jump", "platformer"}
	shooterPhrases   = []string{"shoot", "shooter", "laser", "bullet", "space invaders"}
	puzzlePhrases    = []string{"puzzle", "slide", "logic", "match"}
)

// IsTicTacToePrompt - явно ли промпт просит крестики-нолики.
func IsTicTacToePrompt(prompt string) bool {
	return analysis.ContainsAny(prompt, ticTacToePhrases...)
}

// IsMemoryPrompt - просит ли промпт игру на память (поиск пар).
func IsMemoryPrompt(prompt string) bool {
	return analysis.ContainsAny(prompt, memoryPhrases...)
}

// Classify возвращает архетип с фиксированным приоритетом:
//  1. фразы крестиков-ноликов в промпте;
//  2. override.gameType == tictactoe;
//  3. runner по override или ключевым словам;
//  4. override.gameType из {platformer, shooter, puzzle, arcade};
//  5. ключевые слова platformer, shooter, puzzle, иначе arcade.
//
// memory здесь не возвращается: до него доходит генератор головоломок.
func Classify(prompt string, override *domain.ClassifierOverride) domain.Archetype {
	var hinted domain.Archetype
	if override != nil && override.GameType != nil {
		hinted = *override.GameType
	}

	if IsTicTacToePrompt(prompt) || hinted == domain.ArchetypeTicTacToe {
		return domain.ArchetypeTicTacToe
	}
	if hinted == domain.ArchetypeRunner || analysis.ContainsAny(prompt, runnerPhrases...) {
		return domain.ArchetypeRunner
	}
	switch hinted {
	case domain.ArchetypePlatformer, domain.ArchetypeShooter, domain.ArchetypePuzzle, domain.ArchetypeArcade:
		return hinted
	}

	switch {
	case analysis.ContainsAny(prompt, platformPhrases...):
		return domain.ArchetypePlatformer
	case analysis.ContainsAny(prompt, shooterPhrases...):
		return domain.ArchetypeShooter
	case analysis.ContainsAny(prompt, puzzlePhrases...):
		return domain.ArchetypePuzzle
	default:
		return domain.ArchetypeArcade
	}
}
