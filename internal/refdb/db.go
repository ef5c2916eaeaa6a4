// Package refdb is the in-memory indexed item database: the interner, the
// item table, both cross-reference indexes, the resolved name tables, and
// the search index, bundled behind one read-only facade. Everything is
// built once at startup; every query afterward is a pure read.
package refdb

import (
	"fmt"

	"github.com/barodex/barodex/internal/domain"
	"github.com/barodex/barodex/internal/intern"
	"github.com/barodex/barodex/internal/search"
	"github.com/barodex/barodex/internal/translate"
)

// SearchResult is one ranked hit of Database.Search.
type SearchResult struct {
	Item      ItemRef
	Name      string
	Score     int
	Positions []int
}

// Database owns the full reference data set. All query methods are safe
// for concurrent readers; there are no writers after Load returns.
type Database struct {
	ids *intern.Interner

	// items is the symbol arena: symbol n lives at items[n-1].
	items []*domain.Item

	usedBy     processIndex
	producedBy processIndex

	itemNames  []string // parallel to items
	storeNames map[domain.StoreIdentifier]string

	searchIndex *search.Index
}

// Load builds the database from a fully materialized input, with the
// default fuzzy matcher. Construction order matters: interner, item table,
// cross-reference indexes, name tables, search index.
func Load(raw *domain.ItemDB) (*Database, error) {
	return LoadWithMatcher(raw, search.NewSkimMatcher())
}

// LoadWithMatcher is Load with a caller-supplied search matcher.
func LoadWithMatcher(raw *domain.ItemDB, matcher search.Matcher) (*Database, error) {
	texts, err := translate.ForLanguage(raw.Texts, domain.LanguageEnglish)
	if err != nil {
		return nil, err
	}

	ids := intern.New(len(raw.Items))
	items := make([]*domain.Item, 0, len(raw.Items))
	for i := range raw.Items {
		item := &raw.Items[i]
		sym := ids.Intern(item.ID)
		if int(sym) != len(items)+1 {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateItem, item.ID)
		}
		items = append(items, item)
	}

	usedBy, producedBy := buildIndexes(ids, items)

	itemNames := make([]string, len(items))
	entries := make([]search.Entry, len(items))
	for i, item := range items {
		name := texts.Name(item.NameTextKey(), item.ID)
		itemNames[i] = name
		entries[i] = search.Entry{Symbol: intern.Symbol(i + 1), Name: name}
	}

	storeNames := make(map[domain.StoreIdentifier]string, len(domain.TrackedStores))
	for _, store := range domain.TrackedStores {
		storeNames[store] = texts.Name(store.NameTextKey(), string(store))
	}

	return &Database{
		ids:         ids,
		items:       items,
		usedBy:      usedBy,
		producedBy:  producedBy,
		itemNames:   itemNames,
		storeNames:  storeNames,
		searchIndex: search.NewIndex(entries, matcher),
	}, nil
}

// Len returns the number of items loaded.
func (db *Database) Len() int { return len(db.items) }

// Items enumerates every item in load order.
func (db *Database) Items() []ItemRef {
	refs := make([]ItemRef, len(db.items))
	for i := range db.items {
		refs[i] = ItemRef{sym: intern.Symbol(i + 1)}
	}
	return refs
}

// NewItemRef resolves an identifier to a ref. The second return is false
// for identifiers not in the database.
func (db *Database) NewItemRef(id string) (ItemRef, bool) {
	sym, ok := db.ids.Lookup(id)
	if !ok {
		return ItemRef{}, false
	}
	return ItemRef{sym: sym}, true
}

// GetItem returns the item a ref names. It always succeeds for refs issued
// by this database; anything else panics rather than silently returning
// the wrong item.
func (db *Database) GetItem(ref ItemRef) *domain.Item {
	if !ref.Valid() || int(ref.sym) > len(db.items) {
		panic(fmt.Sprintf("refdb: item ref %d not issued by this database", ref.sym))
	}
	return db.items[ref.sym-1]
}

// ItemID returns the identifier the ref was issued for.
func (db *Database) ItemID(ref ItemRef) string {
	return db.GetItem(ref).ID
}

// DisplayName returns the item's resolved display name. Items without a
// translation entry show their raw identifier.
func (db *Database) DisplayName(ref ItemRef) string {
	if !ref.Valid() || int(ref.sym) > len(db.itemNames) {
		panic(fmt.Sprintf("refdb: item ref %d not issued by this database", ref.sym))
	}
	return db.itemNames[ref.sym-1]
}

// StoreName returns the display name of a tracked store, falling back to
// its identifier.
func (db *Database) StoreName(store domain.StoreIdentifier) string {
	if name, ok := db.storeNames[store]; ok {
		return name
	}
	return string(store)
}

// GetFabricate dereferences a fabrication recipe ref. Refs are only built
// internally from valid enumeration, so an out-of-range index is a defect
// and panics.
func (db *Database) GetFabricate(ref FabricateRef) *domain.Fabricate {
	item := db.GetItem(ref.Item)
	if ref.Index < 0 || ref.Index >= len(item.Fabricate) {
		panic(fmt.Sprintf("refdb: fabricate index %d out of range for item %s", ref.Index, item.ID))
	}
	return &item.Fabricate[ref.Index]
}

// GetDeconstruct dereferences a deconstruction recipe ref. Out-of-range
// indexes panic, as with GetFabricate.
func (db *Database) GetDeconstruct(ref DeconstructRef) *domain.Deconstruct {
	item := db.GetItem(ref.Item)
	if ref.Index < 0 || ref.Index >= len(item.Deconstruct) {
		panic(fmt.Sprintf("refdb: deconstruct index %d out of range for item %s", ref.Index, item.ID))
	}
	return &item.Deconstruct[ref.Index]
}

// GetUsedBy returns the recipes that consume the item as a concrete input.
// ok is false when nothing references the item - callers can distinguish
// "no section" from an empty one. The returned slice is shared and must
// not be mutated.
func (db *Database) GetUsedBy(ref ItemRef) ([]ProcessRef, bool) {
	refs, ok := db.usedBy[ref.sym]
	return refs, ok
}

// GetProducedBy returns the recipes that output the item, either as a
// fabrication result or a deconstruction product. Same sharing contract as
// GetUsedBy.
func (db *Database) GetProducedBy(ref ItemRef) ([]ProcessRef, bool) {
	refs, ok := db.producedBy[ref.sym]
	return refs, ok
}

// Search runs a fuzzy query over all display names and returns ranked
// results with highlight positions. The empty query returns nothing.
func (db *Database) Search(query string) []SearchResult {
	hits := db.searchIndex.Search(query)
	if len(hits) == 0 {
		return nil
	}
	results := make([]SearchResult, len(hits))
	for i, hit := range hits {
		results[i] = SearchResult{
			Item:      ItemRef{sym: hit.Symbol},
			Name:      hit.Name,
			Score:     hit.Score,
			Positions: hit.Positions,
		}
	}
	return results
}
