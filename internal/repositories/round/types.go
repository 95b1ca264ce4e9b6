package round

import "github.com/KirkDiggler/dicepoker/internal/models"

// SaveRoundInput contains parameters for saving a round
type SaveRoundInput struct {
	Round *models.Round
}

// ListRoundsInput contains parameters for listing a session's rounds
type ListRoundsInput struct {
	SessionID string
}

// ListRoundsOutput contains the rounds of a session
type ListRoundsOutput struct {
	Rounds []*models.Round
}
