package models

import "fmt"

// Scoreboard tallies round outcomes for a session
type Scoreboard struct {
	// SessionID is the session being tallied
	SessionID string

	// Counts holds the number of rounds ending in each outcome
	Counts map[Outcome]int
}

// NewScoreboard returns a scoreboard with every outcome at zero
func NewScoreboard(sessionID string) *Scoreboard {
	counts := make(map[Outcome]int, len(Outcomes))
	for _, o := range Outcomes {
		counts[o] = 0
	}

	return &Scoreboard{
		SessionID: sessionID,
		Counts:    counts,
	}
}

// Record adds one completed round to the tally
func (s *Scoreboard) Record(o Outcome) error {
	if !o.IsValid() {
		return fmt.Errorf("cannot record unknown outcome %q", o)
	}
	if s.Counts == nil {
		s.Counts = make(map[Outcome]int, len(Outcomes))
	}
	s.Counts[o]++
	return nil
}

// Total returns the number of rounds played
func (s *Scoreboard) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// Summary reports the tally from the human's point of view
func (s *Scoreboard) Summary() Summary {
	total := s.Total()
	wins := s.Counts[OutcomeHuman]
	draws := s.Counts[OutcomeDraw]

	return Summary{
		Rounds: total,
		Wins:   wins,
		Draws:  draws,
		Losses: total - (wins + draws),
	}
}

// Summary is the end-of-session report for the human participant
type Summary struct {
	Rounds int
	Wins   int
	Losses int
	Draws  int
}

// Played returns true if at least one round was played
func (s Summary) Played() bool {
	return s.Rounds > 0
}
