package console

import (
	"context"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	turnOptions = map[string]entity.Participant{
		"1": entity.Human,
		"2": entity.Automated,
	}

	markOptions = map[string]entity.Mark{
		"1": entity.MarkX,
		"2": entity.MarkO,
	}

	playAgainOptions = map[string]bool{
		"1": true,
		"2": false,
	}
)

// PromptTurnChoice asks who moves first.
func (that *Terminal) PromptTurnChoice(ctx context.Context) (entity.Participant, error) {
	return choose(ctx, that, turnOptions,
		"Welcome to Tic Tac Toe!",
		"Who goes first?",
		"1.) You 2.) Computer",
	)
}

// PromptMarkChoice asks which mark the human plays. The bot gets the other one.
func (that *Terminal) PromptMarkChoice(ctx context.Context) (entity.Mark, error) {
	return choose(ctx, that, markOptions,
		"Choose piece?",
		"1.) X 2.) O",
	)
}

func (that *Terminal) PromptPlayAgain(ctx context.Context) (bool, error) {
	return choose(ctx, that, playAgainOptions, "Play again? 1.) Yes 2.) No")
}

// PromptHumanMove asks for a 1-based cell number until it names an open cell
// and returns the 0-based index. The board is shown again after every rejected answer.
func (that *Terminal) PromptHumanMove(ctx context.Context, board entity.Board) (int, error) {
	for {
		that.println("Where to place? (1-9)")

		answer, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		if cell, ok := parseCell(answer, board); ok {
			return cell, nil
		}

		that.Render(board)
	}
}

// choose repeats the question until the answer is one of the options.
func choose[T any](ctx context.Context, terminal *Terminal, options map[string]T, question ...string) (T, error) {
	for {
		terminal.println(question...)

		answer, err := terminal.readLine(ctx)
		if err != nil {
			var zero T
			return zero, err
		}

		if choice, ok := options[answer]; ok {
			return choice, nil
		}
	}
}

func parseCell(answer string, board entity.Board) (int, bool) {
	position, err := strconv.Atoi(answer)
	if err != nil {
		return 0, false
	}

	cell := position - 1
	if !entity.IsValidCell(cell) || !board.IsOpen(cell) {
		return 0, false
	}

	return cell, true
}
