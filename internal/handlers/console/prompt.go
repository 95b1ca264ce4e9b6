package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/dicepoker/internal/services/messaging"
)

// promptPlayAgain asks until the answer matches yes or no exactly.
// Reaching the end of input counts as no.
func (c *Console) promptPlayAgain(ctx context.Context, firstRound bool) (bool, error) {
	prompt, err := c.messages.GetPromptMessage(ctx, &messaging.GetPromptMessageInput{
		FirstRound: firstRound,
		Yes:        c.yes,
		No:         c.no,
	})
	if err != nil {
		return false, fmt.Errorf("failed to get prompt message: %w", err)
	}

	for {
		fmt.Fprint(c.out, "\n"+prompt.Message)

		choice, err := c.readLine()
		if errors.Is(err, io.EOF) && choice == "" {
			c.logger.Debug("input closed, ending session")
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out)
			return false, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch choice {
		case c.yes:
			fmt.Fprintln(c.out)
			return true, nil
		case c.no:
			fmt.Fprintln(c.out)
			return false, nil
		}

		invalid, err := c.messages.GetInvalidChoiceMessage(ctx, &messaging.GetInvalidChoiceMessageInput{
			Yes: c.yes,
			No:  c.no,
		})
		if err != nil {
			return false, fmt.Errorf("failed to get invalid choice message: %w", err)
		}
		fmt.Fprintln(c.out, invalid.Message)
	}
}

// readLine returns the next line with only its terminator removed
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}
