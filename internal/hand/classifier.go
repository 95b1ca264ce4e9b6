package hand

import "fmt"

const (
	// DefaultHandSize is the number of dice dealt to each participant
	DefaultHandSize = 5

	// DefaultFaces is the number of faces on each die
	DefaultFaces = 6
)

// bucketWeights maps a pattern bucket (multiplicity-1) to its contribution.
// The weights only land on the right category for five dice: a full house
// is one pair plus one triple (1+3), two pair is two pairs (1+1), and so on.
var bucketWeights = map[int]Rank{
	1: OnePair,
	2: ThreeOfAKind,
	3: FourOfAKind,
	4: FiveOfAKind,
}

// Config holds configuration for a classifier
type Config struct {
	// HandSize is the number of dice in a full hand
	HandSize int

	// Faces is the number of faces on each die
	Faces int
}

// Classifier ranks dice hands of a fixed size and face count
type Classifier struct {
	handSize int
	faces    int
}

var defaultClassifier = New(nil)

// New creates a classifier. Unset or non-positive values fall back to
// DefaultHandSize and DefaultFaces.
func New(cfg *Config) *Classifier {
	c := &Classifier{
		handSize: DefaultHandSize,
		faces:    DefaultFaces,
	}
	if cfg == nil {
		return c
	}
	if cfg.HandSize > 0 {
		c.handSize = cfg.HandSize
	}
	if cfg.Faces > 0 {
		c.faces = cfg.Faces
	}

	return c
}

// HandSize returns the number of dice in a full hand
func (c *Classifier) HandSize() int {
	return c.handSize
}

// Faces returns the number of faces on each die
func (c *Classifier) Faces() int {
	return c.faces
}

// RankHand ranks a five dice, six face hand
func RankHand(faces []int) (Rank, error) {
	return defaultClassifier.Rank(faces)
}

// Rank ranks a hand with the closed-form weighted sum over its pattern table.
// It is exact for five dice; use Classify for other hand sizes.
func (c *Classifier) Rank(faces []int) (Rank, error) {
	patterns, err := c.patterns(faces)
	if err != nil {
		return Nothing, err
	}

	var rank Rank
	for bucket, weight := range bucketWeights {
		if bucket < len(patterns) {
			rank += weight * Rank(patterns[bucket])
		}
	}

	return rank, nil
}

func (c *Classifier) patterns(faces []int) ([]int, error) {
	if len(faces) > c.handSize {
		return nil, fmt.Errorf("%w: got %d dice, hand size is %d", ErrInvalidHandSize, len(faces), c.handSize)
	}

	freq, err := FaceFrequencies(faces, c.faces)
	if err != nil {
		return nil, err
	}

	return PatternFrequencies(freq, c.handSize), nil
}
