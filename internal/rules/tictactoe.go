package rules

import (
	"fmt"

	"game-forge/internal/domain"
)

// Mark - содержимое клетки поля.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Board - поле 3x3, индексация [row][col].
type Board [3][3]Mark

// Cell - координата клетки.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// TicTacToeState - состояние партии.
type TicTacToeState string

const (
	TicTacToeInProgress TicTacToeState = "in_progress"
	TicTacToeXWon       TicTacToeState = "x_won"
	TicTacToeOWon       TicTacToeState = "o_won"
	TicTacToeDraw       TicTacToeState = "draw"
)

// Over сообщает, завершена ли партия.
func (s TicTacToeState) Over() bool {
	return s != TicTacToeInProgress
}

// Winner - знак победителя или MarkEmpty.
func (s TicTacToeState) Winner() Mark {
	switch s {
	case TicTacToeXWon:
		return MarkX
	case TicTacToeOWon:
		return MarkO
	default:
		return MarkEmpty
	}
}

var winningLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Центр, затем углы, затем рёбра.
var computerPreference = [9]Cell{
	{1, 1},
	{0, 0}, {0, 2}, {2, 0}, {2, 2},
	{0, 1}, {1, 0}, {1, 2}, {2, 1},
}

// Evaluate проверяет линии, затем заполненность поля.
// Победный ход в последнюю клетку считается победой, а не ничьей.
func Evaluate(b Board) TicTacToeState {
	for _, line := range winningLines {
		v := b[line[0].Row][line[0].Col]
		if v != MarkEmpty && v == b[line[1].Row][line[1].Col] && v == b[line[2].Row][line[2].Col] {
			if v == MarkX {
				return TicTacToeXWon
			}
			return TicTacToeOWon
		}
	}
	for r := range b {
		for c := range b[r] {
			if b[r][c] == MarkEmpty {
				return TicTacToeInProgress
			}
		}
	}
	return TicTacToeDraw
}

// ChooseComputerCell выбирает ход компьютера по фиксированному порядку предпочтений.
// false - свободных клеток нет.
func ChooseComputerCell(b Board) (Cell, bool) {
	for _, cell := range computerPreference {
		if b[cell.Row][cell.Col] == MarkEmpty {
			return cell, true
		}
	}
	for r := range b {
		for c := range b[r] {
			if b[r][c] == MarkEmpty {
				return Cell{Row: r, Col: c}, true
			}
		}
	}
	return Cell{}, false
}

// TicTacToe - партия человека (X, ходит первым) против компьютера (O).
// Не потокобезопасна.
type TicTacToe struct {
	balancing domain.TicTacToeBalancing
	board     Board
	turn      Mark
	state     TicTacToeState
}

// NewTicTacToe начинает новую партию с пустым полем.
func NewTicTacToe(balancing domain.TicTacToeBalancing) *TicTacToe {
	return &TicTacToe{
		balancing: balancing,
		turn:      MarkX,
		state:     TicTacToeInProgress,
	}
}

// NewTicTacToeFromBoard восстанавливает партию по полю.
// Очередь определяется числом знаков: X ходит при равенстве, O - когда X на один больше.
func NewTicTacToeFromBoard(balancing domain.TicTacToeBalancing, board Board) (*TicTacToe, error) {
	var xCount, oCount int
	for r := range board {
		for c := range board[r] {
			switch board[r][c] {
			case MarkX:
				xCount++
			case MarkO:
				oCount++
			case MarkEmpty:
			default:
				return nil, fmt.Errorf("%w: unknown mark %q at (%d,%d)", ErrInvalidBoard, board[r][c], r, c)
			}
		}
	}

	g := &TicTacToe{balancing: balancing, board: board}
	switch xCount - oCount {
	case 0:
		g.turn = MarkX
	case 1:
		g.turn = MarkO
	default:
		return nil, fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidBoard, xCount, oCount)
	}
	g.state = Evaluate(board)
	return g, nil
}

func (g *TicTacToe) Board() Board          { return g.board }
func (g *TicTacToe) State() TicTacToeState { return g.state }
func (g *TicTacToe) Turn() Mark            { return g.turn }

// HumanMove ставит X в клетку.
func (g *TicTacToe) HumanMove(row, col int) error {
	if g.state.Over() {
		return ErrGameOver
	}
	if g.turn != MarkX {
		return ErrNotYourTurn
	}
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if g.board[row][col] != MarkEmpty {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}
	g.place(Cell{Row: row, Col: col}, MarkX)
	return nil
}

// ComputerMove ставит O по порядку предпочтений и возвращает выбранную клетку.
// Рантайм вызывает его после задержки ComputerDelayMs.
func (g *TicTacToe) ComputerMove() (Cell, error) {
	if g.state.Over() {
		return Cell{}, ErrGameOver
	}
	if g.turn != MarkO {
		return Cell{}, ErrNotYourTurn
	}
	cell, ok := ChooseComputerCell(g.board)
	if !ok {
		return Cell{}, ErrGameOver
	}
	g.place(cell, MarkO)
	return cell, nil
}

// Play - ход человека и, если партия продолжается, ответ компьютера.
// Возвращает клетку компьютера или nil, если он не ходил.
func (g *TicTacToe) Play(row, col int) (*Cell, error) {
	if err := g.HumanMove(row, col); err != nil {
		return nil, err
	}
	if g.state.Over() {
		return nil, nil
	}
	cell, err := g.ComputerMove()
	if err != nil {
		return nil, err
	}
	return &cell, nil
}

// Score - итоговые очки человека; 0 пока партия идёт.
func (g *TicTacToe) Score() int {
	switch g.state {
	case TicTacToeXWon:
		return g.balancing.WinScore
	case TicTacToeOWon:
		return g.balancing.LossScore
	case TicTacToeDraw:
		return g.balancing.DrawScore
	default:
		return 0
	}
}

func (g *TicTacToe) place(cell Cell, mark Mark) {
	g.board[cell.Row][cell.Col] = mark
	if mark == MarkX {
		g.turn = MarkO
	} else {
		g.turn = MarkX
	}
	g.state = Evaluate(g.board)
}
