package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dicepoker/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	roundsKeyPrefix = "rounds:"

	// DefaultTTL is how long a session's history outlives its last round
	DefaultTTL = time.Hour
)

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is applied to the history key on every write
	TTL time.Duration
}

// redisRepository stores each session's rounds as a Redis list of JSON documents
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed round repository
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

func roundsKey(sessionID string) string {
	return fmt.Sprintf("%s%s", roundsKeyPrefix, sessionID)
}

// SaveRound appends the round to the session's list
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if err := validateRound(input); err != nil {
		return err
	}

	roundJSON, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	key := roundsKey(input.Round.SessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, roundJSON)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// ListRounds reads the session's list in insertion order
func (r *redisRepository) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	values, err := r.client.LRange(ctx, roundsKey(input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	rounds := make([]*models.Round, 0, len(values))
	for i, value := range values {
		var rd models.Round
		if err := json.Unmarshal([]byte(value), &rd); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round %d: %w", i, err)
		}
		rounds = append(rounds, &rd)
	}

	return &ListRoundsOutput{
		Rounds: rounds,
	}, nil
}
