package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPromptMessage returns the play / play again question
	GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error)

	// GetInvalidChoiceMessage returns the message shown for an unrecognized answer
	GetInvalidChoiceMessage(ctx context.Context, input *GetInvalidChoiceMessageInput) (*GetInvalidChoiceMessageOutput, error)

	// GetHandRankMessage returns the line announcing a participant's rank
	GetHandRankMessage(ctx context.Context, input *GetHandRankMessageInput) (*GetHandRankMessageOutput, error)

	// GetRoundResultMessage returns the win or draw banner for a round
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetSummaryMessage returns the end-of-session report
	GetSummaryMessage(ctx context.Context, input *GetSummaryMessageInput) (*GetSummaryMessageOutput, error)
}
