package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

var errRedisDown = errors.New("redis down")

type mockScoreRepo struct {
	mock.Mock
}

func (that *mockScoreRepo) Record(ctx context.Context, profile string, standing entity.Standing) error {
	args := that.Called(ctx, profile, standing)
	return args.Error(0)
}

func (that *mockScoreRepo) Get(ctx context.Context, profile string) (*entity.Score, error) {
	args := that.Called(ctx, profile)
	return args.Get(0).(*entity.Score), args.Error(1)
}

func newManager(input string, scores scoreRepo) (*GameManager, *bytes.Buffer) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	out := &bytes.Buffer{}
	terminal := console.New(strings.NewReader(input), out, false)
	controller := tictactoe.NewGameController(logger, service.NewBotService(), terminal, terminal)

	return NewGameManager(logger, telemetry.NoopTracer(), terminal, terminal, controller, scores, "alice"), out
}

func TestGameManager_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays games until the human declines", func(t *testing.T) {
		// Given: a win followed by a draw, then "no" to another game
		input := strings.Join([]string{
			"1", "1", "5", "9", "3", "7", "1",
			"1", "1", "5", "3", "4", "8", "9", "2",
		}, "\n") + "\n"
		scores := repository.NewMemoryScoreRepository()
		manager, out := newManager(input, scores)

		// When: the session runs
		err := manager.Run(ctx)

		// Then: both results were announced and tallied
		require.NoError(t, err)
		assert.Contains(t, out.String(), "X wins!")
		assert.Contains(t, out.String(), "Tie!")
		assert.Contains(t, out.String(), "Score: you 1, computer 0, ties 0")
		assert.Contains(t, out.String(), "Score: you 1, computer 0, ties 1")
		assert.Equal(t, 2, strings.Count(out.String(), "Welcome to Tic Tac Toe!"))

		score, err := scores.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, &entity.Score{HumanWins: 1, Ties: 1}, score)
	})

	t.Run("Bot win is recorded for the profile", func(t *testing.T) {
		// Given: the bot opens and the human ignores its threat
		scores := &mockScoreRepo{}
		scores.On("Record", mock.Anything, "alice", entity.StandingBotWon).Return(nil).Once()
		scores.On("Get", mock.Anything, "alice").Return(&entity.Score{BotWins: 3}, nil).Once()
		manager, out := newManager("2\n2\n1\n3\n2\n", scores)

		// When: the session runs
		err := manager.Run(ctx)

		// Then: the loss is recorded and the stored tally shown
		require.NoError(t, err)
		assert.Contains(t, out.String(), "X wins!")
		assert.Contains(t, out.String(), "Score: you 0, computer 3, ties 0")
		scores.AssertExpectations(t)
	})

	t.Run("Scoreboard failures do not end the session", func(t *testing.T) {
		// Given: a score store that is down
		scores := &mockScoreRepo{}
		scores.On("Record", mock.Anything, "alice", entity.StandingBotWon).Return(errRedisDown).Once()
		scores.On("Get", mock.Anything, "alice").Return((*entity.Score)(nil), errRedisDown).Once()
		manager, out := newManager("2\n2\n1\n3\n2\n", scores)

		// When: the session runs
		err := manager.Run(ctx)

		// Then: the game still finishes without a score line
		require.NoError(t, err)
		assert.Contains(t, out.String(), "X wins!")
		assert.NotContains(t, out.String(), "Score:")
		scores.AssertExpectations(t)
	})

	t.Run("Input ending mid-game is reported", func(t *testing.T) {
		// Given: the input stops after the first move
		manager, _ := newManager("1\n1\n5\n", repository.NewMemoryScoreRepository())

		// When: the session runs
		err := manager.Run(ctx)

		// Then: EOF surfaces to the caller
		require.ErrorIs(t, err, io.EOF)
	})
}
