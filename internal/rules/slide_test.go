package rules

import (
	"math/rand"
	"testing"

	"game-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPuzzleBalancing = domain.PuzzleBalancing{
	GridSize:     4,
	TileSize:     100,
	TileColor:    0x4a90e2,
	ShuffleMoves: 1000,
	MaxScore:     1000,
	MovePenalty:  10,
	MinScore:     100,
}

func TestSlidePuzzle_StartsSolved(t *testing.T) {
	p := NewSlidePuzzle(testPuzzleBalancing)
	assert.True(t, p.Solved())
	assert.Equal(t, 1, p.Tile(0, 0))
	assert.Equal(t, 15, p.Tile(3, 2))
	row, col := p.Empty()
	assert.Equal(t, 3, row)
	assert.Equal(t, 3, col)
}

func TestSlidePuzzle_Move(t *testing.T) {
	p := NewSlidePuzzle(testPuzzleBalancing)

	moved, err := p.Move(2, 2)
	require.NoError(t, err)
	assert.False(t, moved, "diagonal tiles cannot slide")

	moved, err = p.Move(0, 0)
	require.NoError(t, err)
	assert.False(t, moved)

	moved, err = p.Move(3, 2)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.False(t, p.Solved())
	assert.Equal(t, 0, p.Tile(3, 2))
	assert.Equal(t, 15, p.Tile(3, 3))

	moved, err = p.Move(3, 3)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.True(t, p.Solved())
	assert.Equal(t, 2, p.Moves())
	assert.Equal(t, 980, p.Score())

	_, err = p.Move(3, 2)
	assert.ErrorIs(t, err, ErrGameOver)

	_, err = p.Move(4, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSlidePuzzle_ShuffleKeepsPermutation(t *testing.T) {
	p := NewSlidePuzzle(testPuzzleBalancing)
	p.Shuffle(rand.New(rand.NewSource(7)))

	assert.Equal(t, 0, p.Moves())
	seen := map[int]bool{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			seen[p.Tile(r, c)] = true
		}
	}
	assert.Len(t, seen, 16)

	row, col := p.Empty()
	assert.Equal(t, 0, p.Tile(row, col))
}

func TestSlidePuzzle_ShuffleIsReproducible(t *testing.T) {
	a := NewSlidePuzzle(testPuzzleBalancing)
	b := NewSlidePuzzle(testPuzzleBalancing)
	a.Shuffle(rand.New(rand.NewSource(99)))
	b.Shuffle(rand.New(rand.NewSource(99)))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, a.Tile(r, c), b.Tile(r, c))
		}
	}
}

func TestSlidePuzzle_ShuffleWithoutRNG(t *testing.T) {
	p := NewSlidePuzzle(testPuzzleBalancing)
	assert.NotPanics(t, func() { p.Shuffle(nil) })
	assert.True(t, p.Solved())
	assert.Equal(t, 0, p.Moves())
}

func TestSlidePuzzle_SingleCellGrid(t *testing.T) {
	b := testPuzzleBalancing
	b.GridSize = 1
	p := NewSlidePuzzle(b)
	assert.NotPanics(t, func() { p.Shuffle(rand.New(rand.NewSource(1))) })
	row, col := p.Empty()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.True(t, p.Solved())
}

func TestSlidePuzzle_ScoreFloor(t *testing.T) {
	p := NewSlidePuzzle(testPuzzleBalancing)
	// Пустая клетка ходит между (2,3) и (1,3), поле ни разу не собрано.
	for i := 0; i < 50; i++ {
		_, err := p.Move(2, 3)
		require.NoError(t, err)
		_, err = p.Move(1, 3)
		require.NoError(t, err)
	}
	assert.Equal(t, 100, p.Moves())
	assert.Equal(t, 100, p.Score())
}
