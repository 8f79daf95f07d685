package service

import "github.com/agnivade/levenshtein"

// similarity returns a 0.0–1.0 confidence score between two strings using
// Levenshtein distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// closestName returns the candidate most similar to target, compared after
// normalization, if its score reaches threshold.
func closestName(target string, candidates []string, threshold float64) (string, bool) {
	normalized := Normalize(target)

	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		if score := similarity(normalized, Normalize(c)); score > bestScore {
			bestScore = score
			best = c
		}
	}

	if bestScore >= threshold && best != "" {
		return best, true
	}
	return "", false
}
