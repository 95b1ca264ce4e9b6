package messaging

import (
	"github.com/KirkDiggler/dicepoker/internal/hand"
	"github.com/KirkDiggler/dicepoker/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneClassic prints the plain table messages
	ToneClassic MessageTone = "classic"

	// ToneFunny adds a dealer quip after each round
	ToneFunny MessageTone = "funny"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Tone selects the message style; defaults to ToneClassic
	Tone MessageTone

	// Seed for quip selection (optional)
	Seed int64
}

// GetPromptMessageInput contains parameters for the play prompt
type GetPromptMessageInput struct {
	// FirstRound is true until a round has been played
	FirstRound bool

	// Yes and No are the accepted answers
	Yes string
	No  string
}

// GetPromptMessageOutput contains the prompt text
type GetPromptMessageOutput struct {
	Message string
}

// GetInvalidChoiceMessageInput contains the accepted answers
type GetInvalidChoiceMessageInput struct {
	Yes string
	No  string
}

// GetInvalidChoiceMessageOutput contains the error text
type GetInvalidChoiceMessageOutput struct {
	Message string
}

// GetHandRankMessageInput contains parameters for a rank announcement
type GetHandRankMessageInput struct {
	// Name is the participant's display name
	Name string

	// Rank is the participant's hand rank
	Rank hand.Rank
}

// GetHandRankMessageOutput contains the rank announcement
type GetHandRankMessageOutput struct {
	Message string
}

// GetRoundResultMessageInput contains parameters for the round banner
type GetRoundResultMessageInput struct {
	// Outcome is the result of the round
	Outcome models.Outcome

	// WinnerName is the winner's display name; ignored on a draw
	WinnerName string
}

// GetRoundResultMessageOutput contains the round banner
type GetRoundResultMessageOutput struct {
	// Banner announces the winner or the draw
	Banner string

	// Quip is an optional remark from the dealer
	Quip string
}

// GetSummaryMessageInput contains parameters for the session report
type GetSummaryMessageInput struct {
	Summary models.Summary
}

// GetSummaryMessageOutput contains the session report
type GetSummaryMessageOutput struct {
	// Title is the report heading; empty when nothing was played
	Title string

	// Lines are the report body in display order
	Lines []string

	// Farewell closes the report; empty when nothing was played
	Farewell string
}
