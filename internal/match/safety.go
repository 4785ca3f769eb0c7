package match

import "github.com/ohana-solucoes/padroniza-backend/internal/domain"

// SafeMatch decides whether a candidate that already cleared the similarity
// cutoff may actually absorb the source value. Empty identifiers mean
// "absent".
//
// Rules, in order:
//  1. Both identifiers present and equal: accept. The identifier is
//     sovereign and overrides any textual dissimilarity.
//  2. Both identifiers present and different: reject, regardless of how
//     similar the names look.
//  3. Otherwise a short source name (≤ 2 words) must not merge into a
//     strictly longer target. "Maria Clara" stays apart from
//     "Maria Clara Souza Representacoes" unless an identifier ties them.
func SafeMatch(sourceVisual, targetVisual, sourceID, targetID string) bool {
	if sourceID != "" && targetID != "" {
		return sourceID == targetID
	}

	sourceWords := domain.WordCount(sourceVisual)
	targetWords := domain.WordCount(targetVisual)
	if sourceWords <= 2 && targetWords > sourceWords {
		return false
	}
	return true
}
