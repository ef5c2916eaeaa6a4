package refdb

import (
	"log/slog"

	"github.com/barodex/barodex/internal/domain"
	"github.com/barodex/barodex/internal/intern"
)

// processIndex maps an item symbol to the recipes that touch it. The
// slices are built once and shared out read-only afterward: queries return
// the same backing slice on every call, so a hot item costs nothing to
// look up repeatedly.
type processIndex map[intern.Symbol][]ProcessRef

// indexBuilder accumulates one reverse index during the single pass over
// all recipes.
type indexBuilder struct {
	ids *intern.Interner
	m   processIndex
}

func newIndexBuilder(ids *intern.Interner) *indexBuilder {
	return &indexBuilder{ids: ids, m: make(processIndex)}
}

// addReference records that ref touches the item with the given id.
// Duplicate references collapse: a recipe listing the same input twice
// still produces one index entry. Ids that name no item in the database
// are skipped; the reference has no ItemRef to be queried through anyway.
func (b *indexBuilder) addReference(id string, ref ProcessRef) {
	sym, ok := b.ids.Lookup(id)
	if !ok {
		slog.Warn("recipe references unknown item, skipping", "id", id, "kind", ref.Kind.String())
		return
	}
	refs := b.m[sym]
	for _, existing := range refs {
		if existing == ref {
			return
		}
	}
	b.m[sym] = append(refs, ref)
}

// buildIndexes walks every recipe of every item exactly once and produces
// the used-by and produced-by indexes. Tag inputs are never indexed: a tag
// is satisfiable by any item carrying it, so there is no single item to
// credit. A tag in a deconstruction input slot should not occur in the
// data; it is tolerated and skipped rather than treated as fatal.
func buildIndexes(ids *intern.Interner, items []*domain.Item) (usedBy, producedBy processIndex) {
	usedByBuilder := newIndexBuilder(ids)
	producedByBuilder := newIndexBuilder(ids)

	for i, item := range items {
		itemRef := ItemRef{sym: intern.Symbol(i + 1)}

		for idx, fabricate := range item.Fabricate {
			ref := FabricateProcess(FabricateRef{Item: itemRef, Index: idx})

			for _, required := range fabricate.RequiredItems {
				if !required.Item.IsTag() {
					usedByBuilder.addReference(required.Item.ID, ref)
				}
			}
			// The fabrication output is the owning item itself.
			producedByBuilder.addReference(item.ID, ref)
		}

		for idx, deconstruct := range item.Deconstruct {
			ref := DeconstructProcess(DeconstructRef{Item: itemRef, Index: idx})

			for _, required := range deconstruct.RequiredItems {
				if required.Item.IsTag() {
					slog.Warn("deconstruction input is a tag, skipping",
						"item", item.ID, "tag", required.Item.Tag)
					continue
				}
				usedByBuilder.addReference(required.Item.ID, ref)
			}

			for _, produced := range deconstruct.Items {
				producedByBuilder.addReference(produced.ID, ref)
			}
		}
	}

	return usedByBuilder.m, producedByBuilder.m
}
