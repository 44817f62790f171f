// Package match scores candidate labels against a fuzzy query. A query
// matches a label when every query character appears in the label in the
// same relative order, case-insensitively, with gaps allowed.
package match

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Scoring weights. Substring hits always outrank scattered subsequence hits:
// substring scores are floored at scatteredBase, which scattered scores never
// reach (the label-width penalty keeps them strictly below it). Within each
// class, earlier match positions and shorter labels win. Only the relative
// ordering matters to callers, not the absolute values.
const (
	substringBase   = 10000
	scatteredBase   = 5000
	positionPenalty = 10
)

// Score reports whether query matches label and, if so, a relevance score
// usable for descending-order ranking. The empty query matches every label
// with a neutral score of zero so the caller's original order is preserved.
func Score(query, label string) (int, bool) {
	if query == "" {
		return 0, true
	}
	if !fuzzy.MatchNormalizedFold(query, label) {
		return 0, false
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)
	width := len([]rune(label))
	if idx := strings.Index(labelLower, queryLower); idx >= 0 {
		pos := len([]rune(labelLower[:idx]))
		score := substringBase - positionPenalty*pos - width
		if score < scatteredBase {
			score = scatteredBase
		}
		return score, true
	}
	pos := firstRunePosition(queryLower, labelLower)
	distance := fuzzy.RankMatchNormalizedFold(query, label)
	return scatteredBase - positionPenalty*pos - width - distance, true
}

// firstRunePosition returns the rune offset of the first query rune within
// the label. Both arguments are already lowercased.
func firstRunePosition(queryLower, labelLower string) int {
	runes := []rune(queryLower)
	if len(runes) == 0 {
		return 0
	}
	first := unicode.ToLower(runes[0])
	for i, r := range []rune(labelLower) {
		if r == first {
			return i
		}
	}
	return 0
}
