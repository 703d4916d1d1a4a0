package rules

import (
	"fmt"
	"math/rand"

	"game-forge/internal/domain"
)

// SlidePuzzle - классические "пятнашки" N x N, 0 обозначает пустую клетку.
type SlidePuzzle struct {
	balancing domain.PuzzleBalancing
	size      int
	grid      [][]int
	emptyRow  int
	emptyCol  int
	moves     int
}

// NewSlidePuzzle создаёт собранное поле: 1..N*N-1, пустая клетка в правом нижнем углу.
func NewSlidePuzzle(balancing domain.PuzzleBalancing) *SlidePuzzle {
	size := balancing.GridSize
	p := &SlidePuzzle{balancing: balancing, size: size, grid: make([][]int, size)}
	for r := 0; r < size; r++ {
		p.grid[r] = make([]int, size)
		for c := 0; c < size; c++ {
			v := r*size + c + 1
			if v == size*size {
				v = 0
			}
			p.grid[r][c] = v
		}
	}
	p.emptyRow, p.emptyCol = size-1, size-1
	return p
}

// Shuffle делает ShuffleMoves случайных допустимых сдвигов и обнуляет счётчик ходов.
// Так поле всегда остаётся решаемым. nil rng оставляет поле как есть.
func (p *SlidePuzzle) Shuffle(rng *rand.Rand) {
	if rng == nil {
		return
	}
	dirs := make([][2]int, 0, 4)
	for i := 0; i < p.balancing.ShuffleMoves; i++ {
		dirs = dirs[:0]
		if p.emptyRow > 0 {
			dirs = append(dirs, [2]int{-1, 0})
		}
		if p.emptyRow < p.size-1 {
			dirs = append(dirs, [2]int{1, 0})
		}
		if p.emptyCol > 0 {
			dirs = append(dirs, [2]int{0, -1})
		}
		if p.emptyCol < p.size-1 {
			dirs = append(dirs, [2]int{0, 1})
		}
		if len(dirs) == 0 {
			break
		}
		d := dirs[rng.Intn(len(dirs))]
		p.swapWithEmpty(p.emptyRow+d[0], p.emptyCol+d[1])
	}
	p.moves = 0
}

// Move сдвигает плитку (row, col) в пустую клетку.
// Возвращает false, если плитка не соседствует с пустой по вертикали или горизонтали.
func (p *SlidePuzzle) Move(row, col int) (bool, error) {
	if row < 0 || row >= p.size || col < 0 || col >= p.size {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if p.Solved() && p.moves > 0 {
		return false, ErrGameOver
	}
	dr, dc := abs(row-p.emptyRow), abs(col-p.emptyCol)
	if dr+dc != 1 {
		return false, nil
	}
	p.swapWithEmpty(row, col)
	p.moves++
	return true, nil
}

// Solved - плитки по порядку, пустая в правом нижнем углу.
func (p *SlidePuzzle) Solved() bool {
	last := p.size*p.size - 1
	for r := 0; r < p.size; r++ {
		for c := 0; c < p.size; c++ {
			idx := r*p.size + c
			want := idx + 1
			if idx == last {
				want = 0
			}
			if p.grid[r][c] != want {
				return false
			}
		}
	}
	return true
}

func (p *SlidePuzzle) Moves() int { return p.moves }

// Tile возвращает значение плитки, 0 - пустая клетка.
func (p *SlidePuzzle) Tile(row, col int) int { return p.grid[row][col] }

// Empty возвращает координаты пустой клетки.
func (p *SlidePuzzle) Empty() (row, col int) { return p.emptyRow, p.emptyCol }

// Score = max(MaxScore - moves*MovePenalty, MinScore).
func (p *SlidePuzzle) Score() int {
	return max(p.balancing.MaxScore-p.moves*p.balancing.MovePenalty, p.balancing.MinScore)
}

func (p *SlidePuzzle) swapWithEmpty(row, col int) {
	p.grid[p.emptyRow][p.emptyCol] = p.grid[row][col]
	p.grid[row][col] = 0
	p.emptyRow, p.emptyCol = row, col
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
