package scoreboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicepoker/internal/repositories/scoreboard Repository

import (
	"context"

	"github.com/KirkDiggler/dicepoker/internal/models"
)

// Repository defines the interface for scoreboard persistence
type Repository interface {
	// CreateScoreboard starts an empty scoreboard for a session
	CreateScoreboard(ctx context.Context, input *CreateScoreboardInput) error

	// RecordOutcome increments the entry for a round's outcome
	RecordOutcome(ctx context.Context, input *RecordOutcomeInput) (*RecordOutcomeOutput, error)

	// GetScoreboard retrieves a session's scoreboard
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*models.Scoreboard, error)
}
