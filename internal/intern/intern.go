// Package intern maps item identifier strings to small integer symbols.
// Every index, reference, and search result in the database is keyed by
// these symbols instead of strings: comparisons are integer compares, map
// keys are cheap, and a symbol can never be confused with a capability tag.
package intern

// Symbol is a dense handle for an interned string. Symbols are copyable,
// totally ordered, and usable as map keys. The zero value is invalid so an
// uninitialized symbol can never silently alias the first interned string.
type Symbol int32

// Valid reports whether the symbol was issued by an interner.
func (s Symbol) Valid() bool { return s > 0 }

// Interner assigns symbols to first-seen strings and resolves them back.
// It is mutated only during database construction; all later access is
// read-only.
type Interner struct {
	symbols map[string]Symbol
	arena   []string
}

// New creates an empty interner with capacity for sizeHint strings.
func New(sizeHint int) *Interner {
	return &Interner{
		symbols: make(map[string]Symbol, sizeHint),
		arena:   make([]string, 0, sizeHint),
	}
}

// Intern returns the symbol for s, assigning the next dense symbol on first
// sight. Interning the same string twice yields the same symbol.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.symbols[s]; ok {
		return sym
	}
	in.arena = append(in.arena, s)
	sym := Symbol(len(in.arena)) // symbols start at 1
	in.symbols[s] = sym
	return sym
}

// Lookup returns the symbol for s without interning. The second return is
// false if s has never been interned.
func (in *Interner) Lookup(s string) (Symbol, bool) {
	sym, ok := in.symbols[s]
	return sym, ok
}

// Resolve returns the string a symbol was assigned for. Resolving a symbol
// this interner never issued panics: symbols only come from Intern/Lookup,
// so a bad one is a programming error, not a data condition.
func (in *Interner) Resolve(sym Symbol) string {
	if !sym.Valid() || int(sym) > len(in.arena) {
		panic("intern: resolve of symbol not issued by this interner")
	}
	return in.arena[sym-1]
}

// Len returns the number of interned strings.
func (in *Interner) Len() int { return len(in.arena) }
