package symbol

import (
	"chuckscope/pkg/stack"
)

type entryKind uint8

const (
	entryBinding  entryKind = iota // key -> value
	entryBoundary                  // start of a scope
)

type entry[K comparable, V any] struct {
	kind  entryKind
	key   K
	value V
}

// Table maps keys to values with shadowing. Entering a key hides, but keeps,
// any earlier binding of that key; popping the newer binding exposes the
// older one again.
type Table[K comparable, V any] struct {
	entries *stack.Stack[entry[K, V]] // every binding and boundary, oldest first
	index   map[K][]int               // key -> positions of its live bindings in entries
	depth   int                       // open scopes
}

// NewTable creates an empty table. sizeHint is the expected number of bindings.
func NewTable[K comparable, V any](sizeHint int) *Table[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Table[K, V]{
		entries: stack.NewStack[entry[K, V]](sizeHint),
		index:   make(map[K][]int, sizeHint),
	}
}

// Enter binds key to value, shadowing any previous binding of key
func (t *Table[K, V]) Enter(key K, value V) {
	t.index[key] = append(t.index[key], t.entries.Size())
	t.entries.Push(entry[K, V]{kind: entryBinding, key: key, value: value})
}

// Look returns the most recent binding of key
func (t *Table[K, V]) Look(key K) (V, bool) {
	positions := t.index[key]
	if len(positions) == 0 {
		var zero V
		return zero, false
	}

	return t.entries.Array()[positions[len(positions)-1]].value, true
}

// Pop removes the most recent binding and returns its key
func (t *Table[K, V]) Pop() (K, error) {
	top, ok := t.entries.Peek()
	if !ok {
		var zero K
		return zero, ErrEmptyTable
	}

	if top.kind == entryBoundary {
		var zero K
		return zero, ErrUnbalancedScope
	}

	t.popBinding()
	return top.key, nil
}

// Top returns the most recent binding without removing it
func (t *Table[K, V]) Top() (K, V, bool) {
	for i := 0; i < t.entries.Size(); i++ {
		e, _ := t.entries.At(i)
		if e.kind == entryBinding {
			return e.key, e.value, true
		}
	}

	var (
		key   K
		value V
	)
	return key, value, false
}

// BeginScope opens a nested scope
func (t *Table[K, V]) BeginScope() {
	t.entries.Push(entry[K, V]{kind: entryBoundary})
	t.depth++
}

// EndScope removes every binding entered since the matching BeginScope
func (t *Table[K, V]) EndScope() error {
	if t.depth == 0 {
		return ErrUnbalancedScope
	}

	for {
		top, _ := t.entries.Peek()
		if top.kind == entryBoundary {
			t.entries.Pop()
			t.depth--
			return nil
		}
		t.popBinding()
	}
}

// Dump calls visit for every binding, most recent first, shadowed bindings included
func (t *Table[K, V]) Dump(visit func(key K, value V)) {
	for i := 0; i < t.entries.Size(); i++ {
		e, _ := t.entries.At(i)
		if e.kind == entryBinding {
			visit(e.key, e.value)
		}
	}
}

// Len returns the number of bindings, shadowed ones included
func (t *Table[K, V]) Len() int {
	return t.entries.Size() - t.depth
}

// Depth returns the number of open scopes
func (t *Table[K, V]) Depth() int {
	return t.depth
}

// Reset drops all bindings and scopes
func (t *Table[K, V]) Reset() {
	t.entries.Clear()
	clear(t.index)
	t.depth = 0
}

func (t *Table[K, V]) popBinding() {
	e, _ := t.entries.Pop()

	positions := t.index[e.key]
	if len(positions) <= 1 {
		delete(t.index, e.key)
		return
	}
	t.index[e.key] = positions[:len(positions)-1]
}
