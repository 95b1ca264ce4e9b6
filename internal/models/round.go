package models

import (
	"time"

	"github.com/KirkDiggler/dicepoker/internal/hand"
)

// Round represents one deal of dice poker between the human and the dealer
type Round struct {
	// ID is the unique identifier for the round
	ID string

	// SessionID is the session the round was played in
	SessionID string

	// Number is the 1-based position of the round in its session
	Number int

	// HumanHand is the human's dice in roll order
	HumanHand []int

	// DealerHand is the dealer's dice in roll order
	DealerHand []int

	// HumanRank is the rank of the human's hand
	HumanRank hand.Rank

	// DealerRank is the rank of the dealer's hand
	DealerRank hand.Rank

	// Outcome is who won the round
	Outcome Outcome

	// PlayedAt is when the round was dealt
	PlayedAt time.Time
}

// HandOf returns the dice dealt to the given participant
func (r *Round) HandOf(id ParticipantID) []int {
	switch id {
	case ParticipantHuman:
		return r.HumanHand
	case ParticipantDealer:
		return r.DealerHand
	default:
		return nil
	}
}

// RankOf returns the rank of the given participant's hand
func (r *Round) RankOf(id ParticipantID) hand.Rank {
	switch id {
	case ParticipantHuman:
		return r.HumanRank
	case ParticipantDealer:
		return r.DealerRank
	default:
		return hand.Nothing
	}
}
