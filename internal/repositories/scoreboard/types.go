package scoreboard

import (
	"errors"

	"github.com/KirkDiggler/dicepoker/internal/models"
)

// ErrScoreboardNotFound is returned when a session has no scoreboard
var ErrScoreboardNotFound = errors.New("scoreboard not found")

// CreateScoreboardInput contains parameters for creating a scoreboard
type CreateScoreboardInput struct {
	SessionID string
}

// RecordOutcomeInput contains parameters for recording a round outcome
type RecordOutcomeInput struct {
	SessionID string
	Outcome   models.Outcome
}

// RecordOutcomeOutput contains the scoreboard after the outcome was recorded
type RecordOutcomeOutput struct {
	Scoreboard *models.Scoreboard
}

// GetScoreboardInput contains parameters for retrieving a scoreboard
type GetScoreboardInput struct {
	SessionID string
}
