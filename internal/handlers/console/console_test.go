package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KirkDiggler/dicepoker/internal/hand"
	"github.com/KirkDiggler/dicepoker/internal/models"
	"github.com/KirkDiggler/dicepoker/internal/services/game"
	gameMocks "github.com/KirkDiggler/dicepoker/internal/services/game/mocks"
	"github.com/KirkDiggler/dicepoker/internal/services/messaging"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConsoleTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	gameService *gameMocks.MockService
	messages    messaging.Service
	out         *bytes.Buffer
	ctx         context.Context
	session     *models.Session
}

func (s *ConsoleTestSuite) SetupSuite() {
	pterm.DisableColor()
}

func (s *ConsoleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gameService = gameMocks.NewMockService(s.ctrl)

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)
	s.messages = messages

	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
	s.session = &models.Session{
		ID:     "session-1",
		Human:  models.Participant{ID: models.ParticipantHuman, Name: "Player"},
		Dealer: models.Participant{ID: models.ParticipantDealer, Name: "Dealer"},
	}
}

func (s *ConsoleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestConsoleTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func (s *ConsoleTestSuite) newConsole(input string) *Console {
	c, err := New(&Config{
		In:          strings.NewReader(input),
		Out:         s.out,
		GameService: s.gameService,
		Messages:    s.messages,
	})
	s.Require().NoError(err)
	return c
}

func (s *ConsoleTestSuite) output() string {
	return pterm.RemoveColorFromString(s.out.String())
}

func (s *ConsoleTestSuite) expectStart() {
	s.gameService.EXPECT().
		StartSession(gomock.Any(), &game.StartSessionInput{}).
		Return(&game.StartSessionOutput{Session: s.session}, nil)
}

func (s *ConsoleTestSuite) expectSummary(summary models.Summary) {
	s.gameService.EXPECT().
		GetSummary(gomock.Any(), &game.GetSummaryInput{SessionID: s.session.ID}).
		Return(&game.GetSummaryOutput{Summary: summary}, nil)
}

func (s *ConsoleTestSuite) expectRound(number int, round *models.Round, summary models.Summary) *gomock.Call {
	round.Number = number
	round.SessionID = s.session.ID
	return s.gameService.EXPECT().
		PlayRound(gomock.Any(), &game.PlayRoundInput{SessionID: s.session.ID}).
		Return(&game.PlayRoundOutput{Round: round, Summary: summary}, nil)
}

func (s *ConsoleTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Out: s.out, GameService: s.gameService, Messages: s.messages})
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), GameService: s.gameService, Messages: s.messages})
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Out: s.out, Messages: s.messages})
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Out: s.out, GameService: s.gameService})
	s.Error(err)

	_, err = New(&Config{
		In:          strings.NewReader(""),
		Out:         s.out,
		GameService: s.gameService,
		Messages:    s.messages,
		Yes:         "ok",
		No:          "ok",
	})
	s.Error(err)
}

func (s *ConsoleTestSuite) TestRun_DeclineImmediately() {
	s.expectStart()
	s.expectSummary(models.Summary{})

	err := s.newConsole("n\n").Run(s.ctx)
	s.Require().NoError(err)

	out := s.output()
	s.Contains(out, "\nWould you like to play dice poker [y|n]? ")
	s.Contains(out, "No worries... another time perhaps... :)")
	s.NotContains(out, "Game Summary")
	s.NotContains(out, "Play again")
}

func (s *ConsoleTestSuite) TestRun_EndOfInputCountsAsNo() {
	s.expectStart()
	s.expectSummary(models.Summary{})

	err := s.newConsole("").Run(s.ctx)
	s.Require().NoError(err)

	s.Contains(s.output(), "No worries... another time perhaps... :)")
}

func (s *ConsoleTestSuite) TestRun_OneRoundHumanWins() {
	s.expectStart()
	s.expectRound(1, &models.Round{
		HumanHand:  []int{3, 3, 3, 5, 5},
		DealerHand: []int{1, 2, 2, 4, 6},
		HumanRank:  hand.FullHouse,
		DealerRank: hand.OnePair,
		Outcome:    models.OutcomeHuman,
	}, models.Summary{Rounds: 1, Wins: 1})
	s.expectSummary(models.Summary{Rounds: 1, Wins: 1})

	err := s.newConsole("y\nn\n").Run(s.ctx)
	s.Require().NoError(err)

	out := s.output()
	s.Contains(out, "Player's hand:\n")
	s.Contains(out, "Dealer's hand:\n")
	s.Contains(out, "-- Player has Full House\n-- Dealer has One Pair\n")
	s.Contains(out, "\n** Player wins! **\n")
	s.Contains(out, "\nPlay again [y|n]? ")
	s.Contains(out, "Game Summary\n============\n")
	s.Contains(out, "You played 1 games\n")
	s.Contains(out, "\t|--> Games won: 1\n")
	s.Contains(out, "\t|--> Games lost: 0\n")
	s.Contains(out, "\t|--> Games drawn: 0\n")
	s.Contains(out, "\nThanks for playing!\n")

	s.Less(strings.Index(out, "Player's hand:"), strings.Index(out, "Dealer's hand:"))
	s.Less(strings.Index(out, "Would you like"), strings.Index(out, "Play again"))
}

func (s *ConsoleTestSuite) TestRun_InvalidInputReprompts() {
	s.expectStart()
	s.expectRound(1, &models.Round{
		HumanHand:  []int{1, 2, 3, 4, 6},
		DealerHand: []int{1, 2, 3, 4, 6},
		HumanRank:  hand.Nothing,
		DealerRank: hand.Nothing,
		Outcome:    models.OutcomeDraw,
	}, models.Summary{Rounds: 1, Draws: 1})
	s.expectSummary(models.Summary{Rounds: 1, Draws: 1})

	err := s.newConsole("Y\nyes\ny\n N\nn\n").Run(s.ctx)
	s.Require().NoError(err)

	out := s.output()
	s.Equal(3, strings.Count(out, "Please enter either 'y' or 'n'."))
	s.Equal(3, strings.Count(out, "Would you like to play dice poker [y|n]? "))
	s.Equal(2, strings.Count(out, "Play again [y|n]? "))
	s.Contains(out, "\n** Draw! **\n")
	s.Contains(out, "\t|--> Games drawn: 1\n")
}

func (s *ConsoleTestSuite) TestRun_WindowsLineEndings() {
	s.expectStart()
	s.expectRound(1, &models.Round{
		HumanHand:  []int{2, 2, 4, 4, 6},
		DealerHand: []int{5, 5, 5, 5, 5},
		HumanRank:  hand.TwoPair,
		DealerRank: hand.FiveOfAKind,
		Outcome:    models.OutcomeDealer,
	}, models.Summary{Rounds: 1, Losses: 1})
	s.expectSummary(models.Summary{Rounds: 1, Losses: 1})

	err := s.newConsole("y\r\nn\r\n").Run(s.ctx)
	s.Require().NoError(err)

	out := s.output()
	s.NotContains(out, "Please enter either")
	s.Contains(out, "\n** Dealer wins! **\n")
	s.Contains(out, "\t|--> Games lost: 1\n")
}

func (s *ConsoleTestSuite) TestRun_AnswerWithoutTrailingNewline() {
	s.expectStart()
	s.expectRound(1, &models.Round{
		HumanHand:  []int{6, 6, 6, 6, 1},
		DealerHand: []int{1, 1, 2, 3, 4},
		HumanRank:  hand.FourOfAKind,
		DealerRank: hand.OnePair,
		Outcome:    models.OutcomeHuman,
	}, models.Summary{Rounds: 1, Wins: 1})
	s.expectSummary(models.Summary{Rounds: 1, Wins: 1})

	err := s.newConsole("y").Run(s.ctx)
	s.Require().NoError(err)

	s.Contains(s.output(), "You played 1 games")
}

func (s *ConsoleTestSuite) TestRun_CustomAnswers() {
	s.expectStart()
	s.expectSummary(models.Summary{})

	c, err := New(&Config{
		In:          strings.NewReader("n\nnope\n"),
		Out:         s.out,
		Yes:         "sure",
		No:          "nope",
		GameService: s.gameService,
		Messages:    s.messages,
	})
	s.Require().NoError(err)

	s.Require().NoError(c.Run(s.ctx))

	out := s.output()
	s.Contains(out, "Would you like to play dice poker [sure|nope]? ")
	s.Contains(out, "Please enter either 'sure' or 'nope'.")
}

func (s *ConsoleTestSuite) TestRun_StartSessionError() {
	s.gameService.EXPECT().
		StartSession(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	err := s.newConsole("y\n").Run(s.ctx)
	s.Error(err)
	s.Contains(err.Error(), "boom")
}

func (s *ConsoleTestSuite) TestRun_PlayRoundError() {
	s.expectStart()
	s.gameService.EXPECT().
		PlayRound(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrSessionNotFound)

	err := s.newConsole("y\n").Run(s.ctx)
	s.ErrorIs(err, game.ErrSessionNotFound)
}

func (s *ConsoleTestSuite) TestRun_CancelledContext() {
	s.expectStart()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.newConsole("y\n").Run(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *ConsoleTestSuite) TestRun_PassesHumanName() {
	s.gameService.EXPECT().
		StartSession(gomock.Any(), &game.StartSessionInput{HumanName: "Ada"}).
		Return(&game.StartSessionOutput{Session: s.session}, nil)
	s.expectSummary(models.Summary{})

	c, err := New(&Config{
		In:          strings.NewReader("n\n"),
		Out:         s.out,
		HumanName:   "Ada",
		GameService: s.gameService,
		Messages:    s.messages,
	})
	s.Require().NoError(err)
	s.Require().NoError(c.Run(s.ctx))
}
