package models

// ParticipantID is the stable identity of a seat at the table
type ParticipantID string

const (
	// ParticipantHuman is the person at the console
	ParticipantHuman ParticipantID = "human"

	// ParticipantDealer is the computer-controlled dealer
	ParticipantDealer ParticipantID = "dealer"
)

// Participant is one of the two seats in a session
type Participant struct {
	// ID identifies the seat
	ID ParticipantID

	// Name is the display name, e.g. "Player" or "Dealer"
	Name string
}
