package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicepoker/internal/repositories/round Repository

import (
	"context"
)

// Repository defines the interface for round history persistence
type Repository interface {
	// SaveRound appends a round to its session's history
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// ListRounds retrieves a session's rounds in the order they were played
	ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error)
}
