package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/dicepoker/internal/models"
	"github.com/KirkDiggler/dicepoker/internal/services/game"
	"github.com/KirkDiggler/dicepoker/internal/services/messaging"
)

const (
	// DefaultYes is the answer that starts another round
	DefaultYes = "y"

	// DefaultNo is the answer that ends the session
	DefaultNo = "n"
)

// Config holds the configuration for the console
type Config struct {
	// In is read line by line for answers
	In io.Reader

	// Out receives all game output
	Out io.Writer

	// Accepted answers; default to "y" and "n"
	Yes string
	No  string

	// HumanName overrides the game service's configured name (optional)
	HumanName string

	// Services
	GameService game.Service
	Messages    messaging.Service

	// Logger is optional; slog.Default() is used when nil
	Logger *slog.Logger
}

// Console plays dice poker over a line-oriented reader and writer
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	yes         string
	no          string
	humanName   string
	gameService game.Service
	messages    messaging.Service
	logger      *slog.Logger
}

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	yes, no := cfg.Yes, cfg.No
	if yes == "" {
		yes = DefaultYes
	}
	if no == "" {
		no = DefaultNo
	}
	if yes == no {
		return nil, fmt.Errorf("yes and no answers must differ, both are %q", yes)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Console{
		in:          bufio.NewReader(cfg.In),
		out:         cfg.Out,
		yes:         yes,
		no:          no,
		humanName:   cfg.HumanName,
		gameService: cfg.GameService,
		messages:    cfg.Messages,
		logger:      logger,
	}, nil
}

// Run plays rounds until the human declines, then prints the session summary
func (c *Console) Run(ctx context.Context) error {
	started, err := c.gameService.StartSession(ctx, &game.StartSessionInput{
		HumanName: c.humanName,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	session := started.Session

	played := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		again, err := c.promptPlayAgain(ctx, played == 0)
		if err != nil {
			return err
		}
		if !again {
			break
		}

		output, err := c.gameService.PlayRound(ctx, &game.PlayRoundInput{
			SessionID: session.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}
		played = output.Summary.Rounds

		if err := c.renderRound(ctx, session, output.Round); err != nil {
			return err
		}
	}

	summary, err := c.gameService.GetSummary(ctx, &game.GetSummaryInput{
		SessionID: session.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to get summary: %w", err)
	}

	c.logger.Debug("session finished",
		"session_id", session.ID,
		"rounds", summary.Summary.Rounds)

	return c.renderSummary(ctx, summary.Summary)
}

// renderRound prints both hands, both ranks and the result of a round
func (c *Console) renderRound(ctx context.Context, session *models.Session, round *models.Round) error {
	participants := []models.ParticipantID{models.ParticipantHuman, models.ParticipantDealer}

	for _, id := range participants {
		c.printHand(session.NameOf(id), round.HandOf(id))
	}

	for _, id := range participants {
		msg, err := c.messages.GetHandRankMessage(ctx, &messaging.GetHandRankMessageInput{
			Name: session.NameOf(id),
			Rank: round.RankOf(id),
		})
		if err != nil {
			return fmt.Errorf("failed to get rank message: %w", err)
		}
		fmt.Fprintln(c.out, msg.Message)
	}

	var winnerName string
	if winner, ok := round.Outcome.Winner(); ok {
		winnerName = session.NameOf(winner)
	}

	result, err := c.messages.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		Outcome:    round.Outcome,
		WinnerName: winnerName,
	})
	if err != nil {
		return fmt.Errorf("failed to get result message: %w", err)
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, bannerStyle(round.Outcome)(result.Banner))
	if result.Quip != "" {
		fmt.Fprintln(c.out, result.Quip)
	}
	fmt.Fprintln(c.out)

	return nil
}

// renderSummary prints the end-of-session report
func (c *Console) renderSummary(ctx context.Context, summary models.Summary) error {
	msg, err := c.messages.GetSummaryMessage(ctx, &messaging.GetSummaryMessageInput{
		Summary: summary,
	})
	if err != nil {
		return fmt.Errorf("failed to get summary message: %w", err)
	}

	fmt.Fprintln(c.out)
	if msg.Title != "" {
		fmt.Fprintln(c.out, titleStyle(msg.Title))
		fmt.Fprintln(c.out, underline(msg.Title))
	}
	for _, line := range msg.Lines {
		fmt.Fprintln(c.out, line)
	}
	if msg.Farewell != "" {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, msg.Farewell)
	} else {
		fmt.Fprintln(c.out)
	}

	return nil
}
