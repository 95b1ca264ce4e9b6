package hand

// shape summarizes a pattern table for the matchers
type shape struct {
	patterns []int
}

// groupsOfAtLeast returns how many distinct faces appear n or more times
func (s shape) groupsOfAtLeast(n int) int {
	groups := 0
	for k := n; k <= len(s.patterns); k++ {
		groups += s.patterns[k-1]
	}

	return groups
}

type matcher struct {
	rank  Rank
	match func(s shape) bool
}

// matchers are ordered strongest first; the first match wins
var matchers = []matcher{
	{FiveOfAKind, func(s shape) bool { return s.groupsOfAtLeast(5) >= 1 }},
	{FourOfAKind, func(s shape) bool { return s.groupsOfAtLeast(4) >= 1 }},
	{FullHouse, func(s shape) bool { return s.groupsOfAtLeast(3) >= 1 && s.groupsOfAtLeast(2) >= 2 }},
	{ThreeOfAKind, func(s shape) bool { return s.groupsOfAtLeast(3) >= 1 }},
	{TwoPair, func(s shape) bool { return s.groupsOfAtLeast(2) >= 2 }},
	{OnePair, func(s shape) bool { return s.groupsOfAtLeast(2) >= 1 }},
}

// Classify ranks a hand by matching named patterns from the strongest down.
// Unlike Rank it is correct for any hand size; for five dice both agree.
func (c *Classifier) Classify(faces []int) (Rank, error) {
	patterns, err := c.patterns(faces)
	if err != nil {
		return Nothing, err
	}

	s := shape{patterns: patterns}
	for _, m := range matchers {
		if m.match(s) {
			return m.rank, nil
		}
	}

	return Nothing, nil
}
