package search

// Sizing constants
const (
	// QueryCacheSize bounds the memoized result cache. Interactive typing
	// re-issues prefixes constantly; the database never changes, so cached
	// results stay valid for the life of the index.
	QueryCacheSize = 256
)
