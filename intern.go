// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"fmt"
	"math/rand/v2"
)

// Symbol is a dense id handed out by an Interner. Ids start at 0 and
// follow first-appearance order.
type Symbol int

const defaultInternCapacity = 2048

// Interner maps identifier strings to dense Symbol ids, with a reverse
// table for Name lookups. The table is capped: an exhausted symbol table
// is a programming error and interning past the capacity panics.
type Interner struct {
	arena *Arena
	names Vec[string]
	index Map[Symbol]
	limit int
}

// InternerOption configures an Interner.
type InternerOption func(*Interner)

// WithInternCapacity caps the number of distinct symbols.
func WithInternCapacity(n int) InternerOption {
	return func(in *Interner) { in.limit = n }
}

// NewInterner returns an Interner drawing all storage from a.
func NewInterner(a *Arena, opts ...InternerOption) *Interner {
	in := &Interner{arena: a, limit: defaultInternCapacity}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Intern returns the Symbol for name, assigning the next free id on first
// appearance.
func (in *Interner) Intern(name string) Symbol {
	if v, ok := in.index.Get(name); ok {
		return *v
	}
	if in.names.Len() >= in.limit {
		panic("memkit: symbol table exhausted")
	}
	sym := Symbol(in.names.Len())
	in.index.Set(in.arena, name, sym)
	// The map's arena-owned key copy doubles as the reverse-table entry.
	in.names.Append(in.arena, in.index.keys.At(in.index.keys.Len()-1))
	return sym
}

// Name returns the string interned for sym.
func (in *Interner) Name(sym Symbol) string {
	if sym < 0 || int(sym) >= in.names.Len() {
		panic(fmt.Sprintf("memkit: unknown symbol %d", sym))
	}
	return in.names.At(int(sym))
}

// Len returns the number of distinct symbols interned.
func (in *Interner) Len() int { return in.names.Len() }

// Gensym returns a generated identifier of length n: a leading "g"
// followed by random digits. n must be at least 1.
func Gensym(n int) string {
	if n < 1 {
		panic("memkit: gensym length must be at least 1")
	}
	b := make([]byte, n)
	b[0] = 'g'
	for i := 1; i < n; i++ {
		b[i] = '0' + byte(rand.IntN(10))
	}
	return string(b)
}
