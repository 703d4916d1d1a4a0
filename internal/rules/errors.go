// Package rules содержит статически скомпилированные правила каждого архетипа.
// Движки строятся из balancing-структур определения игры и не зависят от рантайма отрисовки.
package rules

import "errors"

var (
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already over")
	ErrNotYourTurn  = errors.New("not this player's turn")
	ErrInvalidBoard = errors.New("invalid board")
)
