package symbol

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultBuckets is the number of hash chains of an interner (a prime)
const DefaultBuckets = 65347

const hashMultiplier = 65599

// Symbol is the canonical handle of an interned name. Two handles obtained
// from the same Interner for the same text are the same pointer.
type Symbol struct {
	name string
	next *Symbol // next symbol in the same hash chain
}

// Name returns the text of the symbol
func (s *Symbol) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	return s.Name()
}

// Interner maps names to unique symbols using a fixed-size table of chains.
// Symbols live as long as the interner itself.
type Interner struct {
	mu      sync.RWMutex
	buckets []*Symbol
	count   int
	limit   int // maximum number of symbols, 0 = unlimited
}

type Option func(*Interner)

// WithBuckets sets the number of hash chains
func WithBuckets(n int) Option {
	return func(in *Interner) {
		if n > 0 {
			in.buckets = make([]*Symbol, n)
		}
	}
}

// WithLimit caps the number of symbols TryIntern is allowed to create
func WithLimit(n int) Option {
	return func(in *Interner) { in.limit = n }
}

// NewInterner creates an empty interner
func NewInterner(opts ...Option) *Interner {
	in := &Interner{}
	for _, o := range opts {
		o(in)
	}

	if in.buckets == nil {
		in.buckets = make([]*Symbol, DefaultBuckets)
	}

	return in
}

// Hash is the classic 65599 polynomial string hash
func Hash(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*hashMultiplier + uint32(name[i])
	}
	return h
}

// Intern returns the unique symbol for name, creating it on first use
func (in *Interner) Intern(name string) *Symbol {
	sym, _ := in.intern(name, false)
	return sym
}

// InternBytes interns the text of b. A nil slice has no symbol.
func (in *Interner) InternBytes(b []byte) *Symbol {
	if b == nil {
		return nil
	}
	return in.Intern(string(b))
}

// TryIntern is Intern that honors the interner's symbol limit
func (in *Interner) TryIntern(name string) (*Symbol, error) {
	return in.intern(name, true)
}

// Lookup returns the symbol for name without creating one
func (in *Interner) Lookup(name string) (*Symbol, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	sym := in.find(in.index(name), name)
	return sym, sym != nil
}

// Len returns the number of interned symbols
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.count
}

// Symbols returns every interned symbol in bucket order
func (in *Interner) Symbols() []*Symbol {
	in.mu.RLock()
	defer in.mu.RUnlock()

	out := make([]*Symbol, 0, in.count)
	for _, head := range in.buckets {
		for sym := head; sym != nil; sym = sym.next {
			out = append(out, sym)
		}
	}
	return out
}

func (in *Interner) intern(name string, checked bool) (*Symbol, error) {
	idx := in.index(name)

	// Fast path: symbol already exists
	in.mu.RLock()
	sym := in.find(idx, name)
	in.mu.RUnlock()
	if sym != nil {
		return sym, nil
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	// Double-check after acquiring write lock
	if sym := in.find(idx, name); sym != nil {
		return sym, nil
	}

	if checked && in.limit > 0 && in.count >= in.limit {
		return nil, ErrSymbolLimit
	}

	// the symbol keeps its own copy of the text
	sym = &Symbol{name: strings.Clone(name), next: in.buckets[idx]}
	in.buckets[idx] = sym
	in.count++

	log.Debug("Interned symbol", "name", name, "bucket", idx)

	return sym, nil
}

func (in *Interner) index(name string) int {
	return int(Hash(name) % uint32(len(in.buckets)))
}

func (in *Interner) find(idx int, name string) *Symbol {
	for sym := in.buckets[idx]; sym != nil; sym = sym.next {
		if sym.name == name {
			return sym
		}
	}
	return nil
}
