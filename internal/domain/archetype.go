package domain

import "strings"

// Archetype - идентификатор шаблона игры, под который синтезируется определение.
type Archetype string

const (
	ArchetypePlatformer Archetype = "platformer"
	ArchetypeShooter    Archetype = "shooter"
	ArchetypePuzzle     Archetype = "puzzle"
	ArchetypeTicTacToe  Archetype = "tictactoe"
	ArchetypeMemory     Archetype = "memory"
	ArchetypeArcade     Archetype = "arcade"
	ArchetypeRunner     Archetype = "runner"
)

var allArchetypes = []Archetype{
	ArchetypePlatformer,
	ArchetypeShooter,
	ArchetypePuzzle,
	ArchetypeTicTacToe,
	ArchetypeMemory,
	ArchetypeArcade,
	ArchetypeRunner,
}

// AllArchetypes возвращает копию списка всех известных архетипов в стабильном порядке.
func AllArchetypes() []Archetype {
	out := make([]Archetype, len(allArchetypes))
	copy(out, allArchetypes)
	return out
}

// ParseArchetype приводит строку к Archetype. Регистр и пробелы по краям игнорируются.
func ParseArchetype(s string) (Archetype, bool) {
	candidate := Archetype(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range allArchetypes {
		if a == candidate {
			return a, true
		}
	}
	return "", false
}

func (a Archetype) String() string {
	return string(a)
}

// UsesPhysics сообщает, нужна ли архетипу аркадная физика рантайма.
func (a Archetype) UsesPhysics() bool {
	switch a {
	case ArchetypePlatformer, ArchetypeShooter, ArchetypeArcade, ArchetypeRunner:
		return true
	default:
		return false
	}
}
