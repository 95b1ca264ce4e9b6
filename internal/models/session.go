package models

import (
	"time"
)

// Session represents one run of the game, from the first prompt to the summary
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// StartedAt is when the session began
	StartedAt time.Time

	// Human is the person at the console
	Human Participant

	// Dealer is the computer-controlled opponent
	Dealer Participant
}

// NameOf returns the display name of the given participant
func (s *Session) NameOf(id ParticipantID) string {
	switch id {
	case ParticipantHuman:
		return s.Human.Name
	case ParticipantDealer:
		return s.Dealer.Name
	default:
		return ""
	}
}
