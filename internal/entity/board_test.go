package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

func TestBoard_IsOpen(t *testing.T) {
	t.Run("Every cell of a new board is open", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// Then: all nine cells should be open
		for i := 0; i < BoardSize; i++ {
			assert.True(t, board.IsOpen(i), "cell %d", i)
		}
	})

	t.Run("Placed cell is no longer open", func(t *testing.T) {
		for i := 0; i < BoardSize; i++ {
			// When: a mark is placed on the cell
			board := NewBoard().Place(i, MarkX)

			// Then: the same cell is not open
			assert.False(t, board.IsOpen(i), "cell %d", i)
		}
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Returns a copy and leaves the receiver alone", func(t *testing.T) {
		// Given: a board with one mark
		board := NewBoard().Place(0, MarkX)

		// When: another mark is placed
		next := board.Place(4, MarkO)

		// Then: only the copy carries the new mark
		assert.True(t, board.IsOpen(4))
		assert.Equal(t, MarkO, next[4])
		assert.Equal(t, MarkX, next[0])
	})

	t.Run("Panics on an occupied cell", func(t *testing.T) {
		// Given: a board where cell 3 is taken
		board := NewBoard().Place(3, MarkO)

		// Then: placing on it again fails fast
		require.PanicsWithError(t, apperror.ErrCellOccupied.Error()+": cell 3", func() {
			board.Place(3, MarkX)
		})
	})
}

func TestBoard_OpenCells(t *testing.T) {
	// Given: a board with a few marks
	board := Board{
		MarkX, EmptyCell, MarkO,
		EmptyCell, MarkX, EmptyCell,
		MarkO, EmptyCell, EmptyCell,
	}

	// Then: open cells come back in ascending order
	assert.Equal(t, []int{1, 3, 5, 7, 8}, board.OpenCells())
	assert.False(t, board.IsFull())
}

func TestBoard_IsFull(t *testing.T) {
	board := Board{
		MarkX, MarkO, MarkX,
		MarkX, MarkO, MarkO,
		MarkO, MarkX, MarkX,
	}

	assert.True(t, board.IsFull())
	assert.Empty(t, board.OpenCells())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}
