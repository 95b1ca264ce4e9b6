package game

import (
	"log/slog"

	"github.com/KirkDiggler/dicepoker/internal/common/clock"
	"github.com/KirkDiggler/dicepoker/internal/common/uuid"
	"github.com/KirkDiggler/dicepoker/internal/dice"
	"github.com/KirkDiggler/dicepoker/internal/hand"
	"github.com/KirkDiggler/dicepoker/internal/models"
	roundRepo "github.com/KirkDiggler/dicepoker/internal/repositories/round"
	scoreboardRepo "github.com/KirkDiggler/dicepoker/internal/repositories/scoreboard"
)

const (
	// DefaultHumanName is shown for the human when no name is configured
	DefaultHumanName = "Player"

	// DefaultDealerName is shown for the dealer when no name is configured
	DefaultDealerName = "Dealer"
)

// Config holds configuration for the game service
type Config struct {
	// Display names for the two participants
	HumanName  string
	DealerName string

	// Classifier ranks hands; defaults to five six-sided dice
	Classifier *hand.Classifier

	// Repository dependencies
	ScoreboardRepo scoreboardRepo.Repository
	RoundRepo      roundRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.Generator

	// Logger is optional; slog.Default() is used when nil
	Logger *slog.Logger
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	// HumanName overrides the configured name for this session (optional)
	HumanName string
}

// StartSessionOutput contains the new session
type StartSessionOutput struct {
	Session *models.Session
}

// PlayRoundInput contains parameters for playing a round
type PlayRoundInput struct {
	// SessionID is the session to play in
	SessionID string
}

// PlayRoundOutput contains the result of a round
type PlayRoundOutput struct {
	// Round is the dealt, ranked and decided round
	Round *models.Round

	// Summary is the session tally including this round
	Summary models.Summary
}

// GetSummaryInput contains parameters for summarizing a session
type GetSummaryInput struct {
	SessionID string
}

// GetSummaryOutput contains the session summary
type GetSummaryOutput struct {
	Summary models.Summary
}

// ListRoundsInput contains parameters for listing a session's rounds
type ListRoundsInput struct {
	SessionID string
}

// ListRoundsOutput contains the rounds in the order they were played
type ListRoundsOutput struct {
	Rounds []*models.Round
}
