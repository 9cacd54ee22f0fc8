package match

import (
	"cmp"
	"slices"

	"bindbridge/internal/common"
)

// DefaultThreshold is the minimum similarity Closest accepts.
const DefaultThreshold = 0.6

// Candidate is a scored path.
type Candidate struct {
	Path  string
	Score float64
}

// Rank scores every distinct candidate against target and returns them best
// first. Equal scores keep lexical order.
func Rank(target string, candidates []string) []Candidate {
	paths := common.SortedUnique(candidates)
	ranked := make([]Candidate, 0, len(paths))

	for _, p := range paths {
		ranked = append(ranked, Candidate{Path: p, Score: Similarity(target, p)})
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return ranked
}

// Closest returns the best ranked candidate scoring at least threshold.
func Closest(target string, candidates []string, threshold float64) (string, bool) {
	for _, c := range Rank(target, candidates) {
		if c.Path == target {
			continue
		}

		if c.Score >= threshold {
			return c.Path, true
		}

		break
	}

	return "", false
}
