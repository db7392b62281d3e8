package match

import "strings"

// minScore is the similarity below which a candidate is considered unrelated
// rather than a likely typo.
const minScore = 0.5

// fold normalizes an identifier for comparison: case is ignored and
// separators carry no signal, so "world_clock" and "WorldClock" fold equal.
func fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Levenshtein computes the edit distance between two strings with two
// rolling rows, O(len(a)*len(b)) time and O(min(len(a), len(b))) space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Score returns a similarity in [0, 1] between two identifiers, 1 meaning
// they fold to the same string.
func Score(a, b string) float64 {
	fa, fb := fold(a), fold(b)
	if len(fa) == 0 && len(fb) == 0 {
		return 1
	}

	longest := max(len(fa), len(fb))

	return 1 - float64(Levenshtein(fa, fb))/float64(longest)
}

// Closest returns the candidate most similar to target, provided the
// similarity clears the typo threshold. Earlier candidates win ties, so a
// sorted candidate list gives deterministic suggestions.
func Closest(target string, candidates []string) (string, bool) {
	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		if s := Score(target, c); s > bestScore {
			best, bestScore = c, s
		}
	}

	if bestScore < minScore {
		return "", false
	}

	return best, true
}
