// Package search ranks item display names against interactive queries.
// Matching is gapped-subsequence ("fuzzy") so "scrdrv" still finds
// "Screwdriver", and every result carries the matched character positions
// for highlighting.
package search

import (
	"github.com/sahilm/fuzzy"
)

// Matcher scores one display name against a query. ok is false when the
// query is not a (possibly gapped) subsequence of the name. Implementations
// are swappable; scoring semantics belong to the implementation, ordering
// belongs to the Index.
type Matcher interface {
	Match(name, query string) (score int, positions []int, ok bool)
}

// skimMatcher is the default Matcher, backed by sahilm/fuzzy's
// Smith-Waterman-ish subsequence scorer.
type skimMatcher struct{}

// NewSkimMatcher returns the default fuzzy matcher.
func NewSkimMatcher() Matcher {
	return skimMatcher{}
}

// Match implements Matcher.
func (skimMatcher) Match(name, query string) (int, []int, bool) {
	matches := fuzzy.Find(query, []string{name})
	if len(matches) == 0 {
		return 0, nil, false
	}
	m := matches[0]
	return m.Score, runePositions(name, m.MatchedIndexes), true
}

// runePositions converts the matcher's byte offsets into rune indexes so
// highlights stay aligned for names with multi-byte characters. Offsets
// arrive in ascending order.
func runePositions(name string, byteOffsets []int) []int {
	if len(byteOffsets) == 0 {
		return nil
	}
	positions := make([]int, 0, len(byteOffsets))
	next := 0
	runeIndex := 0
	for byteIndex := range name {
		if next == len(byteOffsets) {
			break
		}
		if byteIndex == byteOffsets[next] {
			positions = append(positions, runeIndex)
			next++
		}
		runeIndex++
	}
	return positions
}
