package hand

import "fmt"

// FaceFrequencies counts how often each face appears in a hand.
// Index i holds the count for face i+1, and the counts sum to len(faces).
func FaceFrequencies(faces []int, numFaces int) ([]int, error) {
	freq := make([]int, numFaces)
	for _, face := range faces {
		if face < 1 || face > numFaces {
			return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidFaceValue, face, numFaces)
		}
		freq[face-1]++
	}

	return freq, nil
}

// PatternFrequencies counts how many distinct faces share each multiplicity.
// Index k-1 holds the number of faces that appear exactly k times, so
// the sum of (k * patterns[k-1]) equals the number of dice counted.
//
// Every entry of freq must be at most handSize.
func PatternFrequencies(freq []int, handSize int) []int {
	patterns := make([]int, handSize)
	for _, count := range freq {
		if count > 0 {
			patterns[count-1]++
		}
	}

	return patterns
}
