package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	rule = "-------------"

	colorX = "1" // red
	colorO = "4" // blue
)

// Render prints the board. Open cells show their 1-based number.
func (that *Terminal) Render(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("\n" + rule + "\n")
	for row := 0; row < 3; row++ {
		sb.WriteString("|")
		for col := 0; col < 3; col++ {
			fmt.Fprintf(&sb, " %s |", that.cellGlyph(board, row*3+col))
		}
		sb.WriteString("\n" + rule + "\n")
	}
	sb.WriteString("\n")

	fmt.Fprint(that.out, sb.String())
}

func (that *Terminal) RenderOutcome(outcome entity.Outcome) {
	switch outcome.Result {
	case entity.ResultWon:
		that.println(that.styledMark(outcome.Winner) + " wins!")
	case entity.ResultDrawn:
		that.println("Tie!")
	}
}

func (that *Terminal) RenderScore(score *entity.Score) {
	that.println(fmt.Sprintf("Score: you %d, computer %d, ties %d", score.HumanWins, score.BotWins, score.Ties))
}

func (that *Terminal) cellGlyph(board entity.Board, cell int) string {
	if board.IsOpen(cell) {
		return that.out.String(strconv.Itoa(cell + 1)).Faint().String()
	}
	return that.styledMark(board[cell])
}

func (that *Terminal) styledMark(mark entity.Mark) string {
	style := that.out.String(markSymbol(mark)).Bold()

	switch mark {
	case entity.MarkX:
		style = style.Foreground(that.out.Color(colorX))
	case entity.MarkO:
		style = style.Foreground(that.out.Color(colorO))
	}

	return style.String()
}

// markSymbol is the only place a mark becomes a display character.
func markSymbol(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return "X"
	case entity.MarkO:
		return "O"
	default:
		return " "
	}
}
