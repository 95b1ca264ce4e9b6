package scoreboard

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dicepoker/internal/models"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.ctx = context.Background()
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) TestRecordAndGet() {
	s.Require().NoError(s.repo.CreateScoreboard(s.ctx, &CreateScoreboardInput{SessionID: "session-1"}))

	output, err := s.repo.RecordOutcome(s.ctx, &RecordOutcomeInput{SessionID: "session-1", Outcome: models.OutcomeDealer})
	s.Require().NoError(err)
	s.Equal(1, output.Scoreboard.Counts[models.OutcomeDealer])

	board, err := s.repo.GetScoreboard(s.ctx, &GetScoreboardInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(models.Summary{Rounds: 1, Losses: 1}, board.Summary())
}

func (s *MemoryRepositoryTestSuite) TestGetReturnsCopy() {
	s.Require().NoError(s.repo.CreateScoreboard(s.ctx, &CreateScoreboardInput{SessionID: "session-1"}))

	board, err := s.repo.GetScoreboard(s.ctx, &GetScoreboardInput{SessionID: "session-1"})
	s.Require().NoError(err)
	board.Counts[models.OutcomeHuman] = 99

	board, err = s.repo.GetScoreboard(s.ctx, &GetScoreboardInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(0, board.Counts[models.OutcomeHuman])
}

func (s *MemoryRepositoryTestSuite) TestNotFound() {
	_, err := s.repo.GetScoreboard(s.ctx, &GetScoreboardInput{SessionID: "missing"})
	s.ErrorIs(err, ErrScoreboardNotFound)

	_, err = s.repo.RecordOutcome(s.ctx, &RecordOutcomeInput{SessionID: "missing", Outcome: models.OutcomeDraw})
	s.ErrorIs(err, ErrScoreboardNotFound)
}

func (s *MemoryRepositoryTestSuite) TestInvalidOutcome() {
	s.Require().NoError(s.repo.CreateScoreboard(s.ctx, &CreateScoreboardInput{SessionID: "session-1"}))

	_, err := s.repo.RecordOutcome(s.ctx, &RecordOutcomeInput{SessionID: "session-1", Outcome: "nobody"})
	s.Error(err)
}
