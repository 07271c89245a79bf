package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type prompter interface {
	PromptTurnChoice(ctx context.Context) (entity.Participant, error)
	PromptMarkChoice(ctx context.Context) (entity.Mark, error)
	PromptPlayAgain(ctx context.Context) (bool, error)
}

type resultView interface {
	RenderOutcome(outcome entity.Outcome)
	RenderScore(score *entity.Score)
}

type gameController interface {
	Play(ctx context.Context, game *entity.Game) (entity.Outcome, error)
}

type scoreRepo interface {
	Record(ctx context.Context, profile string, standing entity.Standing) error
	Get(ctx context.Context, profile string) (*entity.Score, error)
}

// GameManager plays games one after another until the human stops.
type GameManager struct {
	logger *slog.Logger
	tracer trace.Tracer

	prompter   prompter
	view       resultView
	controller gameController
	scoreRepo  scoreRepo

	profile string
}

func NewGameManager(
	logger *slog.Logger,
	tracer trace.Tracer,
	prompter prompter,
	view resultView,
	controller gameController,
	scoreRepo scoreRepo,
	profile string,
) *GameManager {
	return &GameManager{
		logger: logger,
		tracer: tracer,

		prompter:   prompter,
		view:       view,
		controller: controller,
		scoreRepo:  scoreRepo,

		profile: profile,
	}
}

// Run starts a fresh game on every iteration and returns when the human declines another one.
func (that *GameManager) Run(ctx context.Context) error {
	for {
		if err := that.playGame(ctx); err != nil {
			return err
		}

		again, err := that.prompter.PromptPlayAgain(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask for another game: %w", err)
		}

		if !again {
			return nil
		}
	}
}

func (that *GameManager) playGame(ctx context.Context) error {
	first, err := that.prompter.PromptTurnChoice(ctx)
	if err != nil {
		return fmt.Errorf("failed to ask who goes first: %w", err)
	}

	humanMark, err := that.prompter.PromptMarkChoice(ctx)
	if err != nil {
		return fmt.Errorf("failed to ask for a mark: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), first, humanMark)
	log := that.logger.With("method", "playGame", "gameID", game.ID)

	ctx, span := that.tracer.Start(ctx, "game.play", trace.WithAttributes(
		attribute.String("game.id", game.ID),
		attribute.String("game.first", first.String()),
		attribute.String("game.human_mark", humanMark.String()),
	))
	defer span.End()

	log.Info("game started", "first", first.String(), "humanMark", humanMark.String())

	outcome, err := that.controller.Play(ctx, game)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "game aborted")
		return fmt.Errorf("failed to play game: %w", err)
	}

	span.SetAttributes(
		attribute.Int("game.moves", game.Moves),
		attribute.String("game.outcome", outcome.String()),
		attribute.String("game.standing", string(game.Standing())),
	)

	that.view.RenderOutcome(outcome)
	that.updateScore(ctx, log, game.Standing())

	return nil
}

// updateScore records the result and shows the tally. The scoreboard never ends a session.
func (that *GameManager) updateScore(ctx context.Context, log *slog.Logger, standing entity.Standing) {
	if err := that.scoreRepo.Record(ctx, that.profile, standing); err != nil {
		log.Error("failed to record score", "profile", that.profile, "error", err)
	}

	score, err := that.scoreRepo.Get(ctx, that.profile)
	if err != nil {
		log.Error("failed to get score", "profile", that.profile, "error", err)
		return
	}

	log.Debug("score updated", "profile", that.profile, "games", score.Total())
	that.view.RenderScore(score)
}
