package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicepoker/internal/services/game Service

import "context"

// Service defines the interface for dice poker sessions
type Service interface {
	// StartSession opens a session with an empty scoreboard
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// PlayRound deals, ranks and scores one round
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// GetSummary returns the human's wins, losses and draws so far
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// ListRounds returns the rounds played in a session
	ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error)
}
