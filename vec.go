// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"unsafe"
)

const vecInitialCap = 8

// Vec is a growable, contiguous sequence whose backing storage comes from
// an Arena. The zero Vec is empty and ready to append into. Appends that
// trigger growth reallocate the backing block, so pointers into Items are
// invalid across appends.
type Vec[T any] struct {
	items []T
	n     int
	h     Handle
}

// Append writes item after the last element, growing the backing block
// through a when needed. The first append allocates room for vecInitialCap
// elements; once the buffer is within one slot of full, capacity grows to
// cap*2+1 via arena reallocation, which copies content forward.
func (v *Vec[T]) Append(a *Arena, item T) {
	var x T
	elem := int(unsafe.Sizeof(x))
	if elem == 0 {
		// Zero-size elements need no arena storage; a made slice of
		// zero-size T costs nothing and keeps the read paths indexable.
		v.n++
		v.items = make([]T, v.n)
		return
	}
	if len(v.items) == 0 {
		v.h = a.Alloc(elem * vecInitialCap)
		// A reused block may be bigger than requested; the whole of it
		// becomes capacity.
		v.items = Slice[T](a, v.h, len(a.Bytes(v.h))/elem)
		v.n = 0
	} else if v.n+1 >= len(v.items) {
		newCap := len(v.items)*2 + 1
		v.h = a.Realloc(v.h, elem*newCap)
		v.items = Slice[T](a, v.h, newCap)
	}
	v.items[v.n] = item
	v.n++
}

// CopyFrom appends every element of src in order, equivalent to repeated
// Append.
func (v *Vec[T]) CopyFrom(a *Arena, src *Vec[T]) {
	for i := 0; i < src.n; i++ {
		v.Append(a, src.items[i])
	}
}

// At returns the element at index i.
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic("memkit: vec index out of range")
	}
	return v.items[i]
}

// Set overwrites the element at index i.
func (v *Vec[T]) Set(i int, item T) {
	if i < 0 || i >= v.n {
		panic("memkit: vec index out of range")
	}
	v.items[i] = item
}

// Truncate shortens the vector to n elements, keeping capacity.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 || n > v.n {
		panic("memkit: vec truncation out of range")
	}
	v.n = n
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.n }

// Cap returns the capacity of the backing block in elements.
func (v *Vec[T]) Cap() int { return len(v.items) }

// Items returns the live elements. The slice aliases the backing block and
// is invalid across appends.
func (v *Vec[T]) Items() []T { return v.items[:v.n] }
