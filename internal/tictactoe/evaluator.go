package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// WinCombos lists the winning lines in scan order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate reports whether the board is won, drawn or still in play.
// The first uniformly marked line in WinCombos order decides the winner.
func Evaluate(board entity.Board) entity.Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Won(a)
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return entity.Drawn()
	}

	return entity.Ongoing()
}
