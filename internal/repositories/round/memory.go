package round

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/KirkDiggler/dicepoker/internal/models"
)

type memoryRepository struct {
	mu     sync.Mutex
	rounds map[string][]*models.Round
}

// NewMemory creates an in-process round repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		rounds: make(map[string][]*models.Round),
	}
}

// SaveRound appends a copy of the round to its session's history
func (r *memoryRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if err := validateRound(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sessionID := input.Round.SessionID
	r.rounds[sessionID] = append(r.rounds[sessionID], cloneRound(input.Round))
	return nil
}

// ListRounds returns copies of the session's rounds
func (r *memoryRepository) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.rounds[input.SessionID]
	rounds := make([]*models.Round, 0, len(stored))
	for _, rd := range stored {
		rounds = append(rounds, cloneRound(rd))
	}

	return &ListRoundsOutput{
		Rounds: rounds,
	}, nil
}

func validateRound(input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}
	if input.Round.ID == "" {
		return errors.New("round ID cannot be empty")
	}
	if input.Round.SessionID == "" {
		return errors.New("round session ID cannot be empty")
	}
	return nil
}

func cloneRound(rd *models.Round) *models.Round {
	clone := *rd
	clone.HumanHand = slices.Clone(rd.HumanHand)
	clone.DealerHand = slices.Clone(rd.DealerHand)
	return &clone
}
