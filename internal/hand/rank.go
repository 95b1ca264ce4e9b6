package hand

import "fmt"

// Rank is the strength of a dice hand. A higher value always beats a lower one.
type Rank int

// Constants for rank, weakest first
const (
	Nothing Rank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// NumRanks is the number of recognized hand categories
const NumRanks = int(FiveOfAKind) + 1

// String returns the display name of the rank
func (r Rank) String() string {
	switch r {
	case Nothing:
		return "Nothing Special"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// IsValid reports whether r is one of the recognized categories
func (r Rank) IsValid() bool {
	return r >= Nothing && r <= FiveOfAKind
}
