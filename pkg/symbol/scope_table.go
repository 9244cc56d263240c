package symbol

// ScopeTable is a Table keyed by symbols of one interner, so callers can
// bind and look up names by text as well as by symbol.
type ScopeTable[V any] struct {
	*Table[*Symbol, V]
	in *Interner
}

// NewScopeTable creates an empty symbol table on top of in
func NewScopeTable[V any](in *Interner, sizeHint int) *ScopeTable[V] {
	return &ScopeTable[V]{
		Table: NewTable[*Symbol, V](sizeHint),
		in:    in,
	}
}

// EnterName interns text and binds the symbol to value
func (t *ScopeTable[V]) EnterName(text string, value V) *Symbol {
	sym := t.in.Intern(text)
	t.Enter(sym, value)
	return sym
}

// LookName looks up the most recent binding of text. A name that was never
// interned cannot be bound, so the interner is not grown.
func (t *ScopeTable[V]) LookName(text string) (V, bool) {
	sym, ok := t.in.Lookup(text)
	if !ok {
		var zero V
		return zero, false
	}
	return t.Look(sym)
}

// Interner returns the interner backing the table
func (t *ScopeTable[V]) Interner() *Interner {
	return t.in
}
