package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs game sessions on stdin/stdout until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	tracer, shutdownTracer := initTracer(ctx, log, conf)
	defer shutdownTracer()

	scoreRepo, closeStorage, err := initScoreRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	terminal := console.New(os.Stdin, os.Stdout, !conf.NoColor)
	botService := service.NewBotService()
	gameController := tictactoe.NewGameController(logger, botService, terminal, terminal)
	gameManager := usecase.NewGameManager(logger, tracer, terminal, terminal, gameController, scoreRepo, conf.Profile)

	return sessionResult(log, gameManager.Run(ctx))
}

// sessionResult treats closed input and an interrupt as a normal quit.
func sessionResult(log *slog.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		log.Info("Session closed", "reason", err)
		return nil
	default:
		return fmt.Errorf("game session failed: %w", err)
	}
}

// initTracer returns the global tracer when telemetry is enabled and a noop one otherwise,
// along with a func that flushes pending spans. A telemetry failure never stops the game.
func initTracer(ctx context.Context, log *slog.Logger, conf *config.Config) (trace.Tracer, func()) {
	if !conf.Telemetry.Enabled {
		return telemetry.NoopTracer(), func() {}
	}

	shutdown, err := telemetry.Setup(ctx, conf.Telemetry.ServiceName, conf.Telemetry.Endpoint)
	if err != nil {
		log.Warn("telemetry setup failed, running without tracing", "error", err)
		return telemetry.NoopTracer(), func() {}
	}

	// the root context may already be cancelled at exit
	shutdownTracer := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := shutdown(shutdownCtx); err != nil {
			log.Error("could not shut down telemetry", "error", err)
		}
	}

	return telemetry.Tracer("game"), shutdownTracer
}

func initScoreRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Debug("redis disabled, keeping score in memory")
		return repository.NewMemoryScoreRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreRepository(redisStorage), closeStorage, nil
}
