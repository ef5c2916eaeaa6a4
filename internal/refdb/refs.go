package refdb

import (
	"fmt"

	"github.com/barodex/barodex/internal/intern"
)

// ItemRef is an opaque, copyable handle naming one item in the database
// that issued it. Two refs from the same database are equal iff they name
// the same item. A ref is only meaningful against its issuing database;
// using it against another instance is a programming error and is not
// detectable.
type ItemRef struct {
	sym intern.Symbol
}

// Valid reports whether the ref was issued by a database. The zero value
// is invalid.
func (r ItemRef) Valid() bool { return r.sym.Valid() }

// FabricateRef names one fabrication recipe: the item it produces plus the
// position in that item's fabricate list.
type FabricateRef struct {
	Item  ItemRef
	Index int
}

// DeconstructRef names one deconstruction recipe: the item it breaks down
// plus the position in that item's deconstruct list.
type DeconstructRef struct {
	Item  ItemRef
	Index int
}

// ProcessKind discriminates the two recipe kinds a ProcessRef can name.
type ProcessKind uint8

const (
	ProcessFabricate ProcessKind = iota + 1
	ProcessDeconstruct
)

// String implements fmt.Stringer.
func (k ProcessKind) String() string {
	switch k {
	case ProcessFabricate:
		return "fabricate"
	case ProcessDeconstruct:
		return "deconstruct"
	default:
		return fmt.Sprintf("ProcessKind(%d)", uint8(k))
	}
}

// ProcessRef names one recipe of either kind. It is a comparable value
// type: cross-reference lists deduplicate entries by plain equality.
type ProcessRef struct {
	Kind  ProcessKind
	Item  ItemRef
	Index int
}

// FabricateProcess wraps a FabricateRef as a ProcessRef.
func FabricateProcess(ref FabricateRef) ProcessRef {
	return ProcessRef{Kind: ProcessFabricate, Item: ref.Item, Index: ref.Index}
}

// DeconstructProcess wraps a DeconstructRef as a ProcessRef.
func DeconstructProcess(ref DeconstructRef) ProcessRef {
	return ProcessRef{Kind: ProcessDeconstruct, Item: ref.Item, Index: ref.Index}
}

// Fabricate returns the FabricateRef the process names, if it is one.
func (p ProcessRef) Fabricate() (FabricateRef, bool) {
	if p.Kind != ProcessFabricate {
		return FabricateRef{}, false
	}
	return FabricateRef{Item: p.Item, Index: p.Index}, true
}

// Deconstruct returns the DeconstructRef the process names, if it is one.
func (p ProcessRef) Deconstruct() (DeconstructRef, bool) {
	if p.Kind != ProcessDeconstruct {
		return DeconstructRef{}, false
	}
	return DeconstructRef{Item: p.Item, Index: p.Index}, true
}
