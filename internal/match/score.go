// Package match implements the fuzzy-matching core: weighted-ratio best-match
// search, the safety gate that vetoes unsafe merges, the incremental
// clusterer for single-column standardization, and the frozen reference index
// for two-column resolution.
package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Candidate is the winner of a best-match search.
type Candidate struct {
	Index int
	Score int
}

// BestMatch scores query against every candidate with the weighted ratio and
// returns the highest-scoring one, provided it reaches the cutoff (0-100).
// Ties keep the first-encountered maximum, so results are reproducible for a
// fixed candidate order. A scorer panic on pathological input is treated as
// "no match" rather than propagated.
func BestMatch(query string, candidates []string, cutoff int) (c Candidate, ok bool) {
	defer func() {
		if recover() != nil {
			c, ok = Candidate{}, false
		}
	}()

	best := Candidate{Index: -1, Score: -1}
	for i, candidate := range candidates {
		if score := fuzzy.WRatio(query, candidate); score > best.Score {
			best = Candidate{Index: i, Score: score}
		}
	}
	if best.Index < 0 || best.Score < cutoff {
		return Candidate{}, false
	}
	return best, true
}
