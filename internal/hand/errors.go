package hand

// HandError is a custom error type for hand classification errors
type HandError string

// Error implements the error interface
func (e HandError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidFaceValue HandError = "invalid face value"
	ErrInvalidHandSize  HandError = "hand has more dice than the hand size"
)
