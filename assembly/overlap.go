package assembly

// overlapLength returns the length of the longest suffix of a equal to a
// prefix of b, trying lengths from min(len(a), len(b)) down to minOverlap
// and taking the first match; 0 when nothing at or above the threshold
// matches.
//
// Complexity: O(L²) worst case for fragments of length L.
func overlapLength(a, b string, minOverlap int) int {
	maxLen := len(a)
	if len(b) < maxLen {
		maxLen = len(b)
	}
	for l := maxLen; l >= minOverlap; l-- {
		if l == 0 {
			// the empty match carries no information
			return 0
		}
		if a[len(a)-l:] == b[:l] {
			return l
		}
	}
	return 0
}
