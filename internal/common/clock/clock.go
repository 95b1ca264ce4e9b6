package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/dicepoker/internal/common/clock Clock

// Clock stamps rounds with the time they were played
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system clock in UTC
type SystemClock struct{}

// New returns the system clock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}
