package rules

import (
	"fmt"
	"math/rand"

	"game-forge/internal/domain"
)

// MemoryPhase - фаза игры на память.
type MemoryPhase string

const (
	MemoryPreview MemoryPhase = "preview"
	MemoryPlaying MemoryPhase = "playing"
	MemoryWon     MemoryPhase = "won"
)

// ClickOutcome - результат клика по карте.
type ClickOutcome int

const (
	ClickIgnored ClickOutcome = iota
	ClickFirstPick
	ClickMatch
	ClickMismatch
)

func (o ClickOutcome) String() string {
	switch o {
	case ClickFirstPick:
		return "first_pick"
	case ClickMatch:
		return "match"
	case ClickMismatch:
		return "mismatch"
	default:
		return "ignored"
	}
}

// MemoryCard - карта на столе.
type MemoryCard struct {
	Pair    int  `json:"pair"`
	FaceUp  bool `json:"faceUp"`
	Matched bool `json:"matched"`
}

// MemoryGame - поиск пар. Таймеры (превью, задержка несовпадения) ведёт рантайм
// и сообщает о них вызовами EndPreview и ResolveMismatch.
type MemoryGame struct {
	balancing domain.MemoryBalancing
	cards     []MemoryCard
	phase     MemoryPhase
	locked    bool
	first     int
	pending   [2]int
	moves     int
	matched   int
}

// NewMemoryGame раскладывает колоду из Pairs пар, перемешанную rng.
// На превью все карты открыты, ввод заблокирован.
func NewMemoryGame(balancing domain.MemoryBalancing, rng *rand.Rand) *MemoryGame {
	deck := make([]MemoryCard, 0, balancing.Pairs*2)
	for i := 0; i < balancing.Pairs; i++ {
		deck = append(deck, MemoryCard{Pair: i, FaceUp: true}, MemoryCard{Pair: i, FaceUp: true})
	}
	if rng != nil {
		rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	}
	return &MemoryGame{
		balancing: balancing,
		cards:     deck,
		phase:     MemoryPreview,
		locked:    true,
		first:     -1,
		pending:   [2]int{-1, -1},
	}
}

// Cards возвращает копию стола.
func (g *MemoryGame) Cards() []MemoryCard {
	out := make([]MemoryCard, len(g.cards))
	copy(out, g.cards)
	return out
}

func (g *MemoryGame) Phase() MemoryPhase { return g.phase }
func (g *MemoryGame) Locked() bool       { return g.locked }
func (g *MemoryGame) Moves() int         { return g.moves }
func (g *MemoryGame) MatchedPairs() int  { return g.matched }

// FaceColor - цвет лицевой стороны пары.
func (g *MemoryGame) FaceColor(pair int) domain.Color {
	colors := g.balancing.FaceColors
	if len(colors) == 0 {
		return g.balancing.BackColor
	}
	return colors[pair%len(colors)]
}

// EndPreview закрывает все несыгранные карты и открывает ввод.
func (g *MemoryGame) EndPreview() {
	if g.phase != MemoryPreview {
		return
	}
	for i := range g.cards {
		if !g.cards[i].Matched {
			g.cards[i].FaceUp = false
		}
	}
	g.phase = MemoryPlaying
	g.locked = false
}

// Click обрабатывает клик по карте с индексом i.
// Клик игнорируется при блокировке, по сыгранной или уже открытой карте.
func (g *MemoryGame) Click(i int) (ClickOutcome, error) {
	if i < 0 || i >= len(g.cards) {
		return ClickIgnored, fmt.Errorf("%w: card %d", ErrOutOfBounds, i)
	}
	if g.phase != MemoryPlaying || g.locked {
		return ClickIgnored, nil
	}
	card := &g.cards[i]
	if card.Matched || card.FaceUp {
		return ClickIgnored, nil
	}
	card.FaceUp = true

	if g.first < 0 {
		g.first = i
		return ClickFirstPick, nil
	}

	g.locked = true
	g.moves++
	first := g.first
	if g.cards[first].Pair == card.Pair {
		g.cards[first].Matched = true
		card.Matched = true
		g.matched++
		g.first = -1
		g.locked = false
		if g.matched == g.balancing.Pairs {
			g.phase = MemoryWon
		}
		return ClickMatch, nil
	}

	g.pending = [2]int{first, i}
	return ClickMismatch, nil
}

// ResolveMismatch закрывает пару после задержки MismatchDelayMs и снимает блокировку.
func (g *MemoryGame) ResolveMismatch() {
	if g.pending[0] < 0 {
		return
	}
	for _, idx := range g.pending {
		g.cards[idx].FaceUp = false
	}
	g.pending = [2]int{-1, -1}
	g.first = -1
	g.locked = false
}

// Score = max(MinScore, BaseScore - max(0, moves - pairs) * PenaltyPerMove).
func (g *MemoryGame) Score() int {
	return MemoryScore(g.balancing, g.moves)
}

// MemoryScore считает очки за число ходов без состояния партии.
func MemoryScore(b domain.MemoryBalancing, moves int) int {
	extra := moves - b.Pairs
	if extra < 0 {
		extra = 0
	}
	return max(b.MinScore, b.BaseScore-extra*b.PenaltyPerMove)
}
