package models

import "fmt"

// Outcome is the result of a single round
type Outcome string

const (
	// OutcomeHuman indicates the human participant won the round
	OutcomeHuman Outcome = "human"

	// OutcomeDealer indicates the dealer won the round
	OutcomeDealer Outcome = "dealer"

	// OutcomeDraw indicates both hands had the same rank
	OutcomeDraw Outcome = "draw"
)

// Outcomes lists every outcome a scoreboard tracks
var Outcomes = []Outcome{OutcomeHuman, OutcomeDealer, OutcomeDraw}

// IsValid reports whether o is a known outcome
func (o Outcome) IsValid() bool {
	return o == OutcomeHuman || o == OutcomeDealer || o == OutcomeDraw
}

// IsDraw returns true if neither participant won
func (o Outcome) IsDraw() bool {
	return o == OutcomeDraw
}

// Winner returns the winning participant, or false for a draw
func (o Outcome) Winner() (ParticipantID, bool) {
	switch o {
	case OutcomeHuman:
		return ParticipantHuman, true
	case OutcomeDealer:
		return ParticipantDealer, true
	default:
		return "", false
	}
}

// OutcomeFor maps a human-vs-dealer comparison (1, -1 or 0) to an outcome
func OutcomeFor(cmp int) Outcome {
	switch {
	case cmp > 0:
		return OutcomeHuman
	case cmp < 0:
		return OutcomeDealer
	default:
		return OutcomeDraw
	}
}

// ParseOutcome converts a stored value back into an outcome
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.IsValid() {
		return "", fmt.Errorf("unknown outcome %q", s)
	}
	return o, nil
}
