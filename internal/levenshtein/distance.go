// Package levenshtein computes edit distances between domain names.
package levenshtein

// Distance computes the Levenshtein edit distance between two strings,
// compared byte by byte. Domains reaching the pipeline are ASCII, so bytes
// and characters coincide. Uses O(min(m,n)) memory.
func Distance(s, t string) int {
	d, _ := distance(s, t, -1)
	return d
}

// Within reports whether the distance between s and t is at most limit.
// It gives up as soon as every entry of a row exceeds limit.
func Within(s, t string, limit int) (int, bool) {
	if limit < 0 {
		return 0, false
	}
	if diff := len(s) - len(t); diff > limit || -diff > limit {
		return 0, false
	}
	return distance(s, t, limit)
}

// distance returns the edit distance, or ok=false once it is known to
// exceed limit. A negative limit disables the cut-off.
func distance(s, t string, limit int) (int, bool) {
	if len(s) == 0 {
		return len(t), limit < 0 || len(t) <= limit
	}
	if len(t) == 0 {
		return len(s), limit < 0 || len(s) <= limit
	}

	// Shorter string is the column
	if len(s) > len(t) {
		s, t = t, s
	}

	prev := make([]int, len(s)+1)
	curr := make([]int, len(s)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 0; j < len(t); j++ {
		curr[0] = j + 1
		rowMin := curr[0]
		for i := 0; i < len(s); i++ {
			cost := 1
			if s[i] == t[j] {
				cost = 0
			}
			curr[i+1] = min(
				curr[i]+1,    // deletion
				prev[i+1]+1,  // insertion
				prev[i]+cost, // substitution
			)
			rowMin = min(rowMin, curr[i+1])
		}
		if limit >= 0 && rowMin > limit {
			return 0, false
		}
		prev, curr = curr, prev
	}

	d := prev[len(s)]
	return d, limit < 0 || d <= limit
}
