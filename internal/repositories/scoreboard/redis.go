package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/dicepoker/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	scoreboardKeyPrefix = "scoreboard:"

	// DefaultTTL is how long a session's scoreboard outlives its last update
	DefaultTTL = time.Hour
)

// Config holds configuration for the Redis scoreboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is applied to the scoreboard key on every write
	TTL time.Duration
}

// redisRepository implements the Repository interface using a Redis hash per session
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed scoreboard repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

func scoreboardKey(sessionID string) string {
	return fmt.Sprintf("%s%s", scoreboardKeyPrefix, sessionID)
}

// CreateScoreboard writes a zeroed hash for the session
func (r *redisRepository) CreateScoreboard(ctx context.Context, input *CreateScoreboardInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	key := scoreboardKey(input.SessionID)
	fields := make(map[string]interface{}, len(models.Outcomes))
	for _, o := range models.Outcomes {
		fields[string(o)] = 0
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create scoreboard: %w", err)
	}

	return nil
}

// RecordOutcome increments the outcome's field and refreshes the TTL
func (r *redisRepository) RecordOutcome(ctx context.Context, input *RecordOutcomeInput) (*RecordOutcomeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if !input.Outcome.IsValid() {
		return nil, fmt.Errorf("cannot record unknown outcome %q", input.Outcome)
	}

	key := scoreboardKey(input.SessionID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check scoreboard: %w", err)
	}
	if exists == 0 {
		return nil, ErrScoreboardNotFound
	}

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, string(input.Outcome), 1)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record outcome: %w", err)
	}

	board, err := r.GetScoreboard(ctx, &GetScoreboardInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	return &RecordOutcomeOutput{
		Scoreboard: board,
	}, nil
}

// GetScoreboard reads the session's hash back into a scoreboard
func (r *redisRepository) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*models.Scoreboard, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, scoreboardKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrScoreboardNotFound
	}

	board := models.NewScoreboard(input.SessionID)
	for field, value := range fields {
		outcome, err := models.ParseOutcome(field)
		if err != nil {
			return nil, fmt.Errorf("corrupt scoreboard %s: %w", input.SessionID, err)
		}

		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("corrupt scoreboard %s: field %s: %w", input.SessionID, field, err)
		}

		board.Counts[outcome] = count
	}

	return board, nil
}
