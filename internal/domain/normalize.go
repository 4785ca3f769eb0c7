package domain

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	trailingNumberRun = regexp.MustCompile(`\s+[\d.,]+$`)
	trailingDashRun   = regexp.MustCompile(`\s+[-–]+\s*$`)
)

// ExtractLeadingID returns the maximal run of ASCII digits at the start of
// the trimmed text. An empty result means the value carries no identifier.
func ExtractLeadingID(text string) string {
	text = strings.TrimSpace(text)
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	return text[:end]
}

// StripTrailingNoise removes a trailing whitespace-prefixed run of digits,
// dots, and commas, then a trailing whitespace-prefixed run of hyphens or
// en-dashes. Trailing balances and dangling separators in exported ledgers
// ("Acme Corp - 1.234,56", "Acme Corp -") are noise, not part of the name.
func StripTrailingNoise(text string) string {
	text = trailingNumberRun.ReplaceAllString(text, "")
	text = trailingDashRun.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// CanonicalizeVisual produces the presentable spelling of a name:
//   - folds diacritics to their closest ASCII letters ("São" → "Sao")
//   - drops every rune that is not an ASCII letter, digit, or whitespace
//   - compresses whitespace runs into single spaces and trims
//
// The result is what clusters display and export as the canonical value.
func CanonicalizeVisual(text string) string {
	text = unidecode.Unidecode(text)

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			pendingSpace = b.Len() > 0
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FuzzyFold returns the lowercased canonical form used for similarity
// scoring. It is never displayed.
func FuzzyFold(text string) string {
	return strings.ToLower(CanonicalizeVisual(text))
}

// WordCount returns the number of whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
