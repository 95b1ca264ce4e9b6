package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/dicepoker/internal/models"
)

// memoryRepository keeps scoreboards for the life of the process
type memoryRepository struct {
	mu     sync.Mutex
	boards map[string]*models.Scoreboard
}

// NewMemory creates an in-process scoreboard repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		boards: make(map[string]*models.Scoreboard),
	}
}

// CreateScoreboard starts an empty scoreboard, replacing any previous one
func (r *memoryRepository) CreateScoreboard(ctx context.Context, input *CreateScoreboardInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.boards[input.SessionID] = models.NewScoreboard(input.SessionID)
	return nil
}

// RecordOutcome increments the entry for the outcome
func (r *memoryRepository) RecordOutcome(ctx context.Context, input *RecordOutcomeInput) (*RecordOutcomeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.boards[input.SessionID]
	if !ok {
		return nil, ErrScoreboardNotFound
	}

	if err := board.Record(input.Outcome); err != nil {
		return nil, fmt.Errorf("failed to record outcome: %w", err)
	}

	return &RecordOutcomeOutput{
		Scoreboard: cloneScoreboard(board),
	}, nil
}

// GetScoreboard retrieves a copy of the session's scoreboard
func (r *memoryRepository) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*models.Scoreboard, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	board, ok := r.boards[input.SessionID]
	if !ok {
		return nil, ErrScoreboardNotFound
	}

	return cloneScoreboard(board), nil
}

func cloneScoreboard(board *models.Scoreboard) *models.Scoreboard {
	clone := models.NewScoreboard(board.SessionID)
	for o, n := range board.Counts {
		clone.Counts[o] = n
	}
	return clone
}
