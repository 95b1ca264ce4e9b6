package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/dicepoker/internal/common/clock"
	"github.com/KirkDiggler/dicepoker/internal/common/uuid"
	"github.com/KirkDiggler/dicepoker/internal/config"
	"github.com/KirkDiggler/dicepoker/internal/dice"
	"github.com/KirkDiggler/dicepoker/internal/handlers/console"
	"github.com/KirkDiggler/dicepoker/internal/hand"
	roundRepo "github.com/KirkDiggler/dicepoker/internal/repositories/round"
	scoreboardRepo "github.com/KirkDiggler/dicepoker/internal/repositories/scoreboard"
	gameService "github.com/KirkDiggler/dicepoker/internal/services/game"
	"github.com/KirkDiggler/dicepoker/internal/services/messaging"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.NoColor {
		pterm.DisableColor()
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level).WithWriter(os.Stderr)))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("dice poker stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	scoreboards, rounds, closeRepos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	gameSvc, err := gameService.New(&gameService.Config{
		HumanName:      cfg.HumanName,
		DealerName:     cfg.DealerName,
		Classifier:     hand.New(nil),
		ScoreboardRepo: scoreboards,
		RoundRepo:      rounds,
		DiceRoller:     dice.New(&dice.Config{Seed: cfg.Seed}),
		Clock:          clock.New(),
		UUIDGenerator:  uuid.New(),
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{
		Tone: messaging.MessageTone(cfg.Tone),
		Seed: cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	game, err := console.New(&console.Config{
		In:          os.Stdin,
		Out:         os.Stdout,
		Yes:         cfg.YesInput,
		No:          cfg.NoInput,
		GameService: gameSvc,
		Messages:    messages,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	// Reading stdin cannot be interrupted, so the console runs on its own
	// goroutine and an interrupt abandons it.
	done := make(chan error, 1)
	go func() {
		done <- game.Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout)
		return ctx.Err()
	}
}

// newRepositories returns Redis-backed repositories when an address is
// configured and in-memory ones otherwise
func newRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (scoreboardRepo.Repository, roundRepo.Repository, func(), error) {
	if !cfg.UseRedis() {
		return scoreboardRepo.NewMemory(), roundRepo.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	closeClient := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		closeClient()
		return nil, nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}

	scoreboards, err := scoreboardRepo.NewRedis(&scoreboardRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.Redis.TTL,
	})
	if err != nil {
		closeClient()
		return nil, nil, nil, fmt.Errorf("failed to create scoreboard repository: %w", err)
	}

	rounds, err := roundRepo.NewRedis(&roundRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.Redis.TTL,
	})
	if err != nil {
		closeClient()
		return nil, nil, nil, fmt.Errorf("failed to create round repository: %w", err)
	}

	logger.Info("using redis for session state", "addr", cfg.Redis.Addr)

	return scoreboards, rounds, closeClient, nil
}
