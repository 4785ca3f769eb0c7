package match

import "github.com/ohana-solucoes/padroniza-backend/internal/domain"

type refEntry struct {
	fuzzyKey string
	visual   string
	id       string
}

// ReferenceIndex resolves dirty values against a trusted column. Unlike the
// Clusterer it never grows after construction: many dirty values may resolve
// to the same reference entry, and resolution order is irrelevant.
type ReferenceIndex struct {
	cutoff  int
	entries []refEntry
	keys    []string
	byID    map[string]string
}

// BuildReferenceIndex indexes the given reference values. Empty values are
// skipped; on identifier collisions the first-registered entry wins. Values
// should already be distinct (duplicates only waste search time).
func BuildReferenceIndex(values []string, cutoff int) *ReferenceIndex {
	idx := &ReferenceIndex{
		cutoff: cutoff,
		byID:   make(map[string]string),
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		visual := domain.CanonicalizeVisual(v)
		key := domain.FuzzyFold(visual)
		id := domain.ExtractLeadingID(v)
		idx.entries = append(idx.entries, refEntry{fuzzyKey: key, visual: visual, id: id})
		idx.keys = append(idx.keys, key)
		if id != "" {
			if _, taken := idx.byID[id]; !taken {
				idx.byID[id] = visual
			}
		}
	}
	return idx
}

// Size returns the number of indexed reference entries.
func (ri *ReferenceIndex) Size() int {
	return len(ri.entries)
}

// Resolve maps raw to the visual form of the best reference entry. A shared
// identifier resolves immediately; otherwise the best fuzzy candidate is
// checked by the safety gate. Unresolved values pass through as their own
// normalized visual form, untied to any reference.
func (ri *ReferenceIndex) Resolve(raw string) string {
	id := domain.ExtractLeadingID(raw)
	visual := domain.CanonicalizeVisual(domain.StripTrailingNoise(raw))
	key := domain.FuzzyFold(visual)

	if id != "" {
		if canonical, ok := ri.byID[id]; ok {
			return canonical
		}
	}

	if cand, ok := BestMatch(key, ri.keys, ri.cutoff); ok {
		entry := ri.entries[cand.Index]
		if SafeMatch(visual, entry.visual, id, entry.id) {
			return entry.visual
		}
	}

	return visual
}
