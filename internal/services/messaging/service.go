package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/dicepoker/internal/models"
)

// service implements the Service interface
type service struct {
	tone MessageTone

	// Random number generator for selecting quips
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	tone := ToneClassic
	seed := time.Now().UnixNano()
	if config != nil {
		if config.Tone != "" {
			tone = config.Tone
		}
		if config.Seed != 0 {
			seed = config.Seed
		}
	}

	if tone != ToneClassic && tone != ToneFunny {
		return nil, fmt.Errorf("unknown message tone %q", tone)
	}

	return &service{
		tone: tone,
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetPromptMessage returns the play / play again question
func (s *service) GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	question := "Play again"
	if input.FirstRound {
		question = "Would you like to play dice poker"
	}

	return &GetPromptMessageOutput{
		Message: fmt.Sprintf("%s [%s|%s]? ", question, input.Yes, input.No),
	}, nil
}

// GetInvalidChoiceMessage returns the message shown for an unrecognized answer
func (s *service) GetInvalidChoiceMessage(ctx context.Context, input *GetInvalidChoiceMessageInput) (*GetInvalidChoiceMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetInvalidChoiceMessageOutput{
		Message: fmt.Sprintf("Please enter either '%s' or '%s'.", input.Yes, input.No),
	}, nil
}

// GetHandRankMessage returns the line announcing a participant's rank
func (s *service) GetHandRankMessage(ctx context.Context, input *GetHandRankMessageInput) (*GetHandRankMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetHandRankMessageOutput{
		Message: fmt.Sprintf("-- %s has %s", input.Name, input.Rank),
	}, nil
}

// GetRoundResultMessage returns the win or draw banner for a round
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var banner string
	var quips []string

	switch input.Outcome {
	case models.OutcomeDraw:
		banner = "** Draw! **"
		quips = []string{
			"Great minds roll alike.",
			"Nobody wins, nobody cries.",
			"The dice are undecided. Again?",
		}
	case models.OutcomeHuman:
		banner = fmt.Sprintf("** %s wins! **", input.WinnerName)
		quips = []string{
			"The house will remember this.",
			"Beginner's luck, surely.",
			"Fine. Take your victory lap.",
		}
	case models.OutcomeDealer:
		banner = fmt.Sprintf("** %s wins! **", input.WinnerName)
		quips = []string{
			"The house always wins. Mostly.",
			"Better luck next roll.",
			"Don't take it personally, it's just dice.",
		}
	default:
		return nil, fmt.Errorf("unknown outcome %q", input.Outcome)
	}

	output := &GetRoundResultMessageOutput{
		Banner: banner,
	}

	if s.tone == ToneFunny {
		output.Quip = quips[s.rand.Intn(len(quips))]
	}

	return output, nil
}

// GetSummaryMessage returns the end-of-session report
func (s *service) GetSummaryMessage(ctx context.Context, input *GetSummaryMessageInput) (*GetSummaryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	summary := input.Summary
	if !summary.Played() {
		return &GetSummaryMessageOutput{
			Lines: []string{"No worries... another time perhaps... :)"},
		}, nil
	}

	return &GetSummaryMessageOutput{
		Title: "Game Summary",
		Lines: []string{
			fmt.Sprintf("You played %d games", summary.Rounds),
			fmt.Sprintf("\t|--> Games won: %d", summary.Wins),
			fmt.Sprintf("\t|--> Games lost: %d", summary.Losses),
			fmt.Sprintf("\t|--> Games drawn: %d", summary.Draws),
		},
		Farewell: "Thanks for playing!",
	}, nil
}
