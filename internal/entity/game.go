package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseEnded
)

// Game is the state of a single game between the human and the bot.
// A new Game is created for every game played.
type Game struct {
	ID        string
	Board     Board
	Turn      Participant
	HumanMark Mark
	BotMark   Mark
	Phase     Phase
	Moves     int
	Outcome   Outcome
}

func NewGame(id string, first Participant, humanMark Mark) *Game {
	return &Game{
		ID:        id,
		Board:     NewBoard(),
		Turn:      first,
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
		Phase:     PhasePlaying,
	}
}

func (that *Game) MarkOf(participant Participant) Mark {
	if participant == Human {
		return that.HumanMark
	}
	return that.BotMark
}

func (that *Game) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that *Game) IsEnded() bool {
	return that.Phase == PhaseEnded
}

// MakeTurn places the mark of the participant to move and hands the turn over.
// The game is left untouched when the move is rejected.
func (that *Game) MakeTurn(cell int) error {
	if that.IsEnded() {
		return apperror.ErrGameFinished
	}

	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.Board.IsOpen(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board = that.Board.Place(cell, that.MarkOf(that.Turn))
	that.Turn = that.Turn.Other()

	return nil
}

// Conclude ends the game when the outcome is terminal. An ended game stays ended.
func (that *Game) Conclude(outcome Outcome) {
	if that.IsEnded() || !outcome.IsTerminal() {
		return
	}

	that.Outcome = outcome
	that.Phase = PhaseEnded
}

// Standing reports the finished game from the human's side.
func (that *Game) Standing() Standing {
	switch {
	case that.Outcome.IsWonBy(that.HumanMark):
		return StandingHumanWon
	case that.Outcome.IsWonBy(that.BotMark):
		return StandingBotWon
	default:
		return StandingTie
	}
}
