// SPDX-License-Identifier: Apache-2.0

// Package memkit provides the allocation and indexing substrate for small
// language tooling: a region-based arena allocator with first-fit block
// reuse, a growable vector, and a string-keyed hashmap with chained
// collision resolution, both drawing all of their storage from an arena.
//
// # Arena
//
// An Arena owns an append-only list of block records. Alloc satisfies a
// request from the first inactive record large enough (first-fit), Reclaim
// marks a block reusable, and Realloc grows a block by moving it to a new
// record with its content copied forward. No memory is returned to the
// runtime before Reset or Release. Handles are slot/generation pairs:
// using a handle after Reclaim, Realloc or Reset panics instead of
// touching reused memory.
//
//	var a memkit.Arena
//	defer a.Release()
//
//	h := a.Alloc(1024)
//	buf := a.Bytes(h)
//
// # Containers
//
// Vec and Map draw all their storage from an arena and are destroyed
// implicitly when it is released:
//
//	var m memkit.Map[int]
//	m.Set(&a, "answer", 42)
//	v, ok := m.Get("answer")
//
// Contract violations (stale handles, undersized reallocation, an
// exhausted symbol table) panic; absence is an ordinary not-found result.
//
// Nothing in this package is safe for concurrent use except Pool, which
// hands out exclusively owned arenas.
//
// Values stored through typed views live in untyped arena memory: the
// garbage collector does not trace pointers stored there, so pointer-laden
// element types must only reference data the caller keeps alive, such as
// arena-owned strings from CloneString.
package memkit
