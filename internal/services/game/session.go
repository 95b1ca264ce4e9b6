package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dicepoker/internal/models"
	scoreboardRepo "github.com/KirkDiggler/dicepoker/internal/repositories/scoreboard"
)

// StartSession opens a session with a zeroed scoreboard
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	humanName := input.HumanName
	if humanName == "" {
		humanName = s.humanName
	}

	session := &models.Session{
		ID:        s.uuidGenerator.NewID(),
		StartedAt: s.clock.Now(),
		Human: models.Participant{
			ID:   models.ParticipantHuman,
			Name: humanName,
		},
		Dealer: models.Participant{
			ID:   models.ParticipantDealer,
			Name: s.dealerName,
		},
	}

	err := s.scoreboardRepo.CreateScoreboard(ctx, &scoreboardRepo.CreateScoreboardInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scoreboard: %w", err)
	}

	s.logger.InfoContext(ctx, "session started", "session_id", session.ID)

	return &StartSessionOutput{
		Session: session,
	}, nil
}

// GetSummary reports the human's results; losses are derived from the total
func (s *service) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	board, err := s.getScoreboard(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Summary: board.Summary(),
	}, nil
}
