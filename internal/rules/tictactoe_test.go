package rules

import (
	"testing"

	"game-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTicTacToeBalancing = domain.TicTacToeBalancing{
	AccentColor:     0x4a90e2,
	CellSize:        140,
	ComputerDelayMs: 300,
	WinScore:        1000,
	LossScore:       100,
	DrawScore:       500,
}

const (
	e = MarkEmpty
	x = MarkX
	o = MarkO
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  TicTacToeState
	}{
		{"empty", Board{}, TicTacToeInProgress},
		{"x top row", Board{{x, x, x}, {o, o, e}, {e, e, e}}, TicTacToeXWon},
		{"o column", Board{{o, x, x}, {o, x, e}, {o, e, x}}, TicTacToeOWon},
		{"anti diagonal", Board{{o, o, x}, {e, x, e}, {x, e, e}}, TicTacToeXWon},
		{"draw", Board{{x, o, x}, {x, o, o}, {o, x, x}}, TicTacToeDraw},
		{"full board with a line is a win", Board{{x, o, x}, {o, x, o}, {o, x, x}}, TicTacToeXWon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.board))
		})
	}
}

func TestChooseComputerCell(t *testing.T) {
	t.Run("center first", func(t *testing.T) {
		cell, ok := ChooseComputerCell(Board{{x, e, e}, {e, e, e}, {e, e, e}})
		require.True(t, ok)
		assert.Equal(t, Cell{Row: 1, Col: 1}, cell)
	})

	t.Run("corners after center", func(t *testing.T) {
		cell, ok := ChooseComputerCell(Board{{x, e, e}, {e, x, e}, {e, e, e}})
		require.True(t, ok)
		assert.Equal(t, Cell{Row: 0, Col: 2}, cell)
	})

	t.Run("edges after corners", func(t *testing.T) {
		cell, ok := ChooseComputerCell(Board{{x, e, o}, {e, x, e}, {o, e, x}})
		require.True(t, ok)
		assert.Equal(t, Cell{Row: 0, Col: 1}, cell)
	})

	t.Run("full board", func(t *testing.T) {
		_, ok := ChooseComputerCell(Board{{x, o, x}, {x, o, o}, {o, x, x}})
		assert.False(t, ok)
	})
}

func TestTicTacToe_ComputerAnswersCornerWithCenter(t *testing.T) {
	g := NewTicTacToe(testTicTacToeBalancing)

	cell, err := g.Play(0, 0)
	require.NoError(t, err)
	require.NotNil(t, cell)
	assert.Equal(t, Cell{Row: 1, Col: 1}, *cell)
	assert.Equal(t, MarkO, g.Board()[1][1])
	assert.Equal(t, MarkX, g.Turn())
	assert.Equal(t, TicTacToeInProgress, g.State())
	assert.Equal(t, 0, g.Score())
}

func TestTicTacToe_WinningLastCell(t *testing.T) {
	g, err := NewTicTacToeFromBoard(testTicTacToeBalancing, Board{{x, o, x}, {o, x, o}, {o, x, e}})
	require.NoError(t, err)

	cell, err := g.Play(2, 2)
	require.NoError(t, err)
	assert.Nil(t, cell, "computer must not move after the game ends")
	assert.Equal(t, TicTacToeXWon, g.State())
	assert.Equal(t, 1000, g.Score())
}

func TestTicTacToe_Errors(t *testing.T) {
	t.Run("occupied", func(t *testing.T) {
		g := NewTicTacToe(testTicTacToeBalancing)
		_, err := g.Play(0, 0)
		require.NoError(t, err)
		_, err = g.Play(1, 1)
		assert.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("out of bounds", func(t *testing.T) {
		g := NewTicTacToe(testTicTacToeBalancing)
		assert.ErrorIs(t, g.HumanMove(3, 0), ErrOutOfBounds)
		assert.ErrorIs(t, g.HumanMove(0, -1), ErrOutOfBounds)
	})

	t.Run("not your turn", func(t *testing.T) {
		g := NewTicTacToe(testTicTacToeBalancing)
		require.NoError(t, g.HumanMove(0, 0))
		assert.ErrorIs(t, g.HumanMove(0, 1), ErrNotYourTurn)

		fresh := NewTicTacToe(testTicTacToeBalancing)
		_, err := fresh.ComputerMove()
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("game over", func(t *testing.T) {
		g, err := NewTicTacToeFromBoard(testTicTacToeBalancing, Board{{x, x, x}, {o, o, e}, {e, e, e}})
		require.NoError(t, err)
		assert.Equal(t, TicTacToeXWon, g.State())
		assert.ErrorIs(t, g.HumanMove(2, 2), ErrGameOver)
	})
}

func TestNewTicTacToeFromBoard(t *testing.T) {
	t.Run("computer to move", func(t *testing.T) {
		g, err := NewTicTacToeFromBoard(testTicTacToeBalancing, Board{{x, e, e}, {e, e, e}, {e, e, e}})
		require.NoError(t, err)
		assert.Equal(t, MarkO, g.Turn())
	})

	t.Run("too many O", func(t *testing.T) {
		_, err := NewTicTacToeFromBoard(testTicTacToeBalancing, Board{{o, e, e}, {e, e, e}, {e, e, e}})
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("unknown mark", func(t *testing.T) {
		_, err := NewTicTacToeFromBoard(testTicTacToeBalancing, Board{{"Z", e, e}, {e, e, e}, {e, e, e}})
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})
}

// Перебираем все стратегии человека: каждая партия должна завершиться без ошибок.
func TestTicTacToe_AllHumanLinesTerminate(t *testing.T) {
	var games int
	var walk func(g *TicTacToe, depth int)
	walk = func(g *TicTacToe, depth int) {
		require.LessOrEqual(t, depth, 5)
		if g.State().Over() {
			games++
			assert.Contains(t, []int{1000, 100, 500}, g.Score())
			return
		}
		board := g.Board()
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if board[r][c] != MarkEmpty {
					continue
				}
				next, err := NewTicTacToeFromBoard(testTicTacToeBalancing, board)
				require.NoError(t, err)
				_, err = next.Play(r, c)
				require.NoError(t, err)
				walk(next, depth+1)
			}
		}
	}
	walk(NewTicTacToe(testTicTacToeBalancing), 0)
	assert.Positive(t, games)
}

func TestTicTacToeState_Winner(t *testing.T) {
	assert.Equal(t, MarkX, TicTacToeXWon.Winner())
	assert.Equal(t, MarkO, TicTacToeOWon.Winner())
	assert.Equal(t, MarkEmpty, TicTacToeDraw.Winner())
	assert.Equal(t, MarkEmpty, TicTacToeInProgress.Winner())
}
