package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound   GameError = "session not found"
	ErrEmptySessionID    GameError = "session ID cannot be empty"
	ErrNilInput          GameError = "input cannot be nil"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilScoreboardRepo GameError = "scoreboard repository cannot be nil"
	ErrNilRoundRepo      GameError = "round repository cannot be nil"
	ErrNilDiceRoller     GameError = "dice roller cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
)
