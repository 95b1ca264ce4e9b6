package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/dicepoker/internal/common/uuid Generator

// Generator hands out identifiers for sessions and rounds
type Generator interface {
	NewID() string
}

// RandomGenerator issues random (version 4) UUIDs
type RandomGenerator struct{}

func New() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns a new UUID string
func (g *RandomGenerator) NewID() string {
	return uuid.NewString()
}
