// Package translate holds the flat localization table for the active
// language. Lookups never fail: a missing key falls back to the raw
// identifier so data-quality gaps degrade to ugly-but-correct names
// instead of errors mid-browse.
package translate

import (
	"fmt"

	"github.com/barodex/barodex/internal/domain"
)

// Table is a read-only key to display-string mapping for one language.
type Table struct {
	texts map[string]string
}

// ForLanguage selects the given language's text table out of the raw
// database. A missing table is fatal: every later name lookup assumes the
// table exists.
func ForLanguage(texts map[domain.Language]map[string]string, lang domain.Language) (*Table, error) {
	t, ok := texts[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingLanguage, lang)
	}
	return NewTable(t), nil
}

// NewTable wraps an already-selected text table.
func NewTable(texts map[string]string) *Table {
	return &Table{texts: texts}
}

// Get returns the translation for key, if present.
func (t *Table) Get(key string) (string, bool) {
	s, ok := t.texts[key]
	return s, ok
}

// Name returns the translation for key, or fallback verbatim when the key
// has no entry.
func (t *Table) Name(key, fallback string) string {
	if s, ok := t.texts[key]; ok {
		return s
	}
	return fallback
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.texts) }
