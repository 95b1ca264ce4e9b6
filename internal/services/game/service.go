package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dicepoker/internal/common/clock"
	"github.com/KirkDiggler/dicepoker/internal/common/uuid"
	"github.com/KirkDiggler/dicepoker/internal/dice"
	"github.com/KirkDiggler/dicepoker/internal/hand"
	"github.com/KirkDiggler/dicepoker/internal/models"
	roundRepo "github.com/KirkDiggler/dicepoker/internal/repositories/round"
	scoreboardRepo "github.com/KirkDiggler/dicepoker/internal/repositories/scoreboard"
)

// service implements the Service interface
type service struct {
	humanName      string
	dealerName     string
	classifier     *hand.Classifier
	scoreboardRepo scoreboardRepo.Repository
	roundRepo      roundRepo.Repository
	diceRoller     dice.Roller
	clock          clock.Clock
	uuidGenerator  uuid.Generator
	logger         *slog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ScoreboardRepo == nil {
		return nil, ErrNilScoreboardRepo
	}
	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	svc := &service{
		humanName:      cfg.HumanName,
		dealerName:     cfg.DealerName,
		classifier:     cfg.Classifier,
		scoreboardRepo: cfg.ScoreboardRepo,
		roundRepo:      cfg.RoundRepo,
		diceRoller:     cfg.DiceRoller,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		logger:         cfg.Logger,
	}

	if svc.humanName == "" {
		svc.humanName = DefaultHumanName
	}
	if svc.dealerName == "" {
		svc.dealerName = DefaultDealerName
	}
	if svc.classifier == nil {
		svc.classifier = hand.New(nil)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc, nil
}

// PlayRound deals a fresh hand to the human and then the dealer, ranks both
// and records the outcome on the session scoreboard
func (s *service) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	board, err := s.getScoreboard(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	humanHand := dice.RollHand(s.diceRoller, s.classifier.HandSize(), s.classifier.Faces())
	dealerHand := dice.RollHand(s.diceRoller, s.classifier.HandSize(), s.classifier.Faces())

	humanRank, err := s.classifier.Rank(humanHand)
	if err != nil {
		return nil, fmt.Errorf("failed to rank human hand %v: %w", humanHand, err)
	}

	dealerRank, err := s.classifier.Rank(dealerHand)
	if err != nil {
		return nil, fmt.Errorf("failed to rank dealer hand %v: %w", dealerHand, err)
	}

	round := &models.Round{
		ID:         s.uuidGenerator.NewID(),
		SessionID:  input.SessionID,
		Number:     board.Total() + 1,
		HumanHand:  humanHand,
		DealerHand: dealerHand,
		HumanRank:  humanRank,
		DealerRank: dealerRank,
		Outcome:    models.OutcomeFor(hand.Compare(humanRank, dealerRank)),
		PlayedAt:   s.clock.Now(),
	}

	recorded, err := s.scoreboardRepo.RecordOutcome(ctx, &scoreboardRepo.RecordOutcomeInput{
		SessionID: input.SessionID,
		Outcome:   round.Outcome,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record outcome: %w", err)
	}

	if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, fmt.Errorf("failed to save round: %w", err)
	}

	s.logger.DebugContext(ctx, "round played",
		"session_id", round.SessionID,
		"round", round.Number,
		"human_hand", humanHand,
		"human_rank", humanRank.String(),
		"dealer_hand", dealerHand,
		"dealer_rank", dealerRank.String(),
		"outcome", string(round.Outcome),
	)

	return &PlayRoundOutput{
		Round:   round,
		Summary: recorded.Scoreboard.Summary(),
	}, nil
}

// ListRounds returns the rounds played in a session
func (s *service) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	if _, err := s.getScoreboard(ctx, input.SessionID); err != nil {
		return nil, err
	}

	output, err := s.roundRepo.ListRounds(ctx, &roundRepo.ListRoundsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	return &ListRoundsOutput{
		Rounds: output.Rounds,
	}, nil
}

// getScoreboard loads a session's scoreboard, translating a missing board
// into ErrSessionNotFound
func (s *service) getScoreboard(ctx context.Context, sessionID string) (*models.Scoreboard, error) {
	board, err := s.scoreboardRepo.GetScoreboard(ctx, &scoreboardRepo.GetScoreboardInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, scoreboardRepo.ErrScoreboardNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return board, nil
}
