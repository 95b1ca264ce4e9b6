package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDice(t *testing.T) {
	expected := "" +
		" -------   -------\n" +
		"|       | | o   o |\n" +
		"|   o   | | o   o |\n" +
		"|       | | o   o |\n" +
		" -------   -------\n"

	assert.Equal(t, expected, renderDice([]int{1, 6}))
}

func TestRenderDice_RollOrder(t *testing.T) {
	rows := renderDice([]int{2, 1})
	assert.Equal(t, "| o     | |       |", lineAt(rows, 1))
	assert.Equal(t, "|     o | |       |", lineAt(rows, 3))
}

func TestRenderDice_FaceWithoutPips(t *testing.T) {
	rows := renderDice([]int{12})
	assert.Equal(t, "|  12   |", lineAt(rows, 2))
}

func TestRenderDice_Empty(t *testing.T) {
	assert.Empty(t, renderDice(nil))
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, "============", underline("Game Summary"))
}

func lineAt(rendered string, n int) string {
	line := 0
	start := 0
	for i, r := range rendered {
		if r != '\n' {
			continue
		}
		if line == n {
			return rendered[start:i]
		}
		line++
		start = i + 1
	}
	return ""
}
