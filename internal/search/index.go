package search

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/barodex/barodex/internal/intern"
)

// Result is one ranked search hit.
type Result struct {
	Symbol intern.Symbol `json:"-"`
	Name   string        `json:"name"`
	Score  int           `json:"score"`
	// Positions holds the character indexes of Name that matched the
	// query, for highlighting.
	Positions []int `json:"positions"`
}

// Entry is one searchable name, registered at index construction.
type Entry struct {
	Symbol intern.Symbol
	Name   string
}

// Index is the search index over all item display names. It is built once
// and read-only afterward; the only internal mutation is the bounded query
// cache, which is safe because results for an immutable name set never go
// stale.
type Index struct {
	entries  []Entry
	matcher  Matcher
	collator *collate.Collator
	cache    *lru.Cache[string, []Result]
}

// NewIndex builds a search index over the given entries using the supplied
// matcher. Entries keep their given order for scanning; result order is
// defined by Search alone.
func NewIndex(entries []Entry, matcher Matcher) *Index {
	// Cache creation only fails for non-positive sizes.
	cache, err := lru.New[string, []Result](QueryCacheSize)
	if err != nil {
		panic(err)
	}
	return &Index{
		entries:  entries,
		matcher:  matcher,
		collator: collate.New(language.English, collate.IgnoreCase),
		cache:    cache,
	}
}

// Search returns every entry whose name fuzzy-matches the query, sorted by
// descending score. Ties are broken by case-insensitive collation of the
// display name, then by symbol, so ordering is deterministic across calls.
// The empty query matches nothing. The returned slice is shared with the
// cache and must not be mutated.
func (ix *Index) Search(query string) []Result {
	if query == "" {
		return nil
	}

	if cached, ok := ix.cache.Get(query); ok {
		return cached
	}

	var results []Result
	for _, entry := range ix.entries {
		score, positions, ok := ix.matcher.Match(entry.Name, query)
		if !ok {
			continue
		}
		results = append(results, Result{
			Symbol:    entry.Symbol,
			Name:      entry.Name,
			Score:     score,
			Positions: positions,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if c := ix.collator.CompareString(results[i].Name, results[j].Name); c != 0 {
			return c < 0
		}
		return results[i].Symbol < results[j].Symbol
	})

	ix.cache.Add(query, results)
	return results
}
