package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dicepoker/internal/models"
	"github.com/pterm/pterm"
)

// dieWidth is the number of characters between a die's side walls
const dieWidth = 7

// pips holds the three inner rows of each standard face
var pips = map[int][3]string{
	1: {"       ", "   o   ", "       "},
	2: {" o     ", "       ", "     o "},
	3: {" o     ", "   o   ", "     o "},
	4: {" o   o ", "       ", " o   o "},
	5: {" o   o ", "   o   ", " o   o "},
	6: {" o   o ", " o   o ", " o   o "},
}

// dieRows returns the five rows of ASCII art for a single face.
// Faces without a pip layout show their number instead.
func dieRows(face int) [5]string {
	inner, ok := pips[face]
	if !ok {
		inner = [3]string{
			strings.Repeat(" ", dieWidth),
			centre(strconv.Itoa(face), dieWidth),
			strings.Repeat(" ", dieWidth),
		}
	}

	edge := " " + strings.Repeat("-", dieWidth) + " "
	return [5]string{
		edge,
		"|" + inner[0] + "|",
		"|" + inner[1] + "|",
		"|" + inner[2] + "|",
		edge,
	}
}

// renderDice lays the dice out side by side in roll order
func renderDice(faces []int) string {
	if len(faces) == 0 {
		return ""
	}

	var rows [5][]string
	for _, face := range faces {
		art := dieRows(face)
		for i := range art {
			rows[i] = append(rows[i], art[i])
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.TrimRight(strings.Join(row, " "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// printHand prints "<name>'s hand:" followed by the dice and a blank line
func (c *Console) printHand(name string, faces []int) {
	fmt.Fprintf(c.out, "%s's hand:\n", pterm.LightCyan(name))
	fmt.Fprint(c.out, renderDice(faces))
	fmt.Fprintln(c.out)
}

// bannerStyle colors a round result by who won it
func bannerStyle(outcome models.Outcome) func(a ...any) string {
	switch outcome {
	case models.OutcomeHuman:
		return pterm.LightGreen
	case models.OutcomeDealer:
		return pterm.LightRed
	default:
		return pterm.LightYellow
	}
}

func titleStyle(title string) string {
	return pterm.LightYellow(title)
}

// underline returns a rule as wide as text
func underline(text string) string {
	return strings.Repeat("=", len(text))
}

func centre(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
