package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	BoardSize  = 9
	CenterCell = 4
)

// Board is a 3x3 grid in row-major order: 0,1,2 is the top row, 6,7,8 the bottom one.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

// IsOpen reports whether the cell holds no mark. The index must be valid.
func (that Board) IsOpen(index int) bool {
	return that[index] == EmptyCell
}

// Place returns a copy of the board with mark in the given cell.
// Placing into an occupied cell is a caller bug and panics.
func (that Board) Place(index int, mark Mark) Board {
	if !that.IsOpen(index) {
		panic(fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index))
	}

	that[index] = mark

	return that
}

// OpenCells returns the indexes of the empty cells in ascending order.
func (that Board) OpenCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
