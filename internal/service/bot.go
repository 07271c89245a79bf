package service

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// BotService picks the automated player's moves.
type BotService interface {
	// SelectMove returns the cell to play, or false when the board has no open cell.
	SelectMove(board entity.Board, own, opponent entity.Mark) (int, bool)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// SelectMove looks one ply ahead: win if possible, otherwise block,
// otherwise take the centre, otherwise the first open cell.
func (that *botService) SelectMove(board entity.Board, own, opponent entity.Mark) (int, bool) {
	availableCells := board.OpenCells()
	if len(availableCells) == 0 {
		return 0, false
	}

	if cell, ok := winningCell(board, availableCells, own); ok {
		return cell, true
	}

	if cell, ok := winningCell(board, availableCells, opponent); ok {
		return cell, true
	}

	if board.IsOpen(entity.CenterCell) {
		return entity.CenterCell, true
	}

	return availableCells[0], true
}

// winningCell returns the first cell where mark would complete a line.
func winningCell(board entity.Board, cells []int, mark entity.Mark) (int, bool) {
	for _, cell := range cells {
		if tictactoe.Evaluate(board.Place(cell, mark)).IsWonBy(mark) {
			return cell, true
		}
	}

	return 0, false
}
