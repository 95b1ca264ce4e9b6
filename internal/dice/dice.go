package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/dicepoker/internal/dice Roller

import (
	"math/rand"
	"time"
)

// Roller rolls a single die
type Roller interface {
	// Roll returns a face in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// RandomRoller rolls dice from a seeded pseudo-random source
type RandomRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// RollHand rolls count dice one at a time and returns them in roll order
func RollHand(roller Roller, count, sides int) []int {
	faces := make([]int, count)
	for i := range faces {
		faces[i] = roller.Roll(sides)
	}
	return faces
}
