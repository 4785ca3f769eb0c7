package match

import "github.com/ohana-solucoes/padroniza-backend/internal/domain"

type pattern struct {
	fuzzyKey string
	visual   string
}

// Clusterer incrementally partitions values into canonical groups. Values
// must be fed in descending frequency order: the first member of a group
// becomes its canonical representative, so the most common spelling wins.
//
// The accumulator grows monotonically during a run and is discarded with the
// Clusterer. Nothing is shared across runs.
type Clusterer struct {
	cutoff   int
	patterns []pattern
	keys     []string          // patterns[i].fuzzyKey, kept flat for search
	byID     map[string]string // leading identifier → canonical visual form
}

// NewClusterer creates a Clusterer with the given similarity cutoff (0-100).
func NewClusterer(cutoff int) *Clusterer {
	return &Clusterer{
		cutoff: cutoff,
		byID:   make(map[string]string),
	}
}

// Assign resolves raw to its canonical visual form. A registered identifier
// short-circuits the fuzzy search; a fuzzy hit must still pass the safety
// gate. When nothing matches, the value founds a new group and maps to its
// own visual form.
func (c *Clusterer) Assign(raw string) string {
	id := domain.ExtractLeadingID(raw)
	visual := domain.CanonicalizeVisual(domain.StripTrailingNoise(raw))
	key := domain.FuzzyFold(visual)

	if id != "" {
		if canonical, ok := c.byID[id]; ok {
			return canonical
		}
	}

	if len(c.patterns) > 0 {
		if cand, ok := BestMatch(key, c.keys, c.cutoff); ok {
			candidateVisual := c.patterns[cand.Index].visual
			candidateID := domain.ExtractLeadingID(candidateVisual)
			if SafeMatch(visual, candidateVisual, id, candidateID) {
				return candidateVisual
			}
		}
	}

	c.patterns = append(c.patterns, pattern{fuzzyKey: key, visual: visual})
	c.keys = append(c.keys, key)
	if id != "" {
		c.byID[id] = visual
	}
	return visual
}

// Size returns the number of registered canonical groups.
func (c *Clusterer) Size() int {
	return len(c.patterns)
}
