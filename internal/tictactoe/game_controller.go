package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type moveSelector interface {
	SelectMove(board entity.Board, own, opponent entity.Mark) (int, bool)
}

type humanInput interface {
	PromptHumanMove(ctx context.Context, board entity.Board) (int, error)
}

type boardRenderer interface {
	Render(board entity.Board)
}

// GameController drives one game from the first move to a win or a draw.
type GameController struct {
	logger *slog.Logger

	selector moveSelector
	input    humanInput
	view     boardRenderer
}

func NewGameController(logger *slog.Logger, selector moveSelector, input humanInput, view boardRenderer) *GameController {
	return &GameController{
		logger:   logger,
		selector: selector,
		input:    input,
		view:     view,
	}
}

// Play runs the turn loop until the game ends and returns the final outcome.
func (that *GameController) Play(ctx context.Context, game *entity.Game) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "gameID", game.ID)

	that.view.Render(game.Board)

	for game.IsPlaying() {
		if err := ctx.Err(); err != nil {
			return entity.Ongoing(), fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.playTurn(ctx, log, game); err != nil {
			return entity.Ongoing(), err
		}

		that.view.Render(game.Board)

		outcome := Evaluate(game.Board)
		game.Conclude(outcome)
		log.Debug("turn played", "moves", game.Moves, "outcome", outcome.String())
	}

	log.Info("game ended", "moves", game.Moves, "outcome", game.Outcome.String())

	return game.Outcome, nil
}

func (that *GameController) playTurn(ctx context.Context, log *slog.Logger, game *entity.Game) error {
	game.Moves++

	switch game.Turn {
	case entity.Human:
		cell, err := that.input.PromptHumanMove(ctx, game.Board)
		if err != nil {
			return fmt.Errorf("failed to read human move: %w", err)
		}

		if err = game.MakeTurn(cell); err != nil {
			return fmt.Errorf("failed to make human turn: %w", err)
		}
	case entity.Automated:
		cell, ok := that.selector.SelectMove(game.Board, game.BotMark, game.HumanMark)
		if !ok {
			// full board, the evaluator reports the draw
			log.Debug("bot has no move available", "moves", game.Moves)
			return nil
		}

		if err := game.MakeTurn(cell); err != nil {
			return fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot moved", "cell", cell)
	}

	return nil
}
