package hand

// Compare returns 1 if a beats b, -1 if b beats a and 0 on a draw
func Compare(a, b Rank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
