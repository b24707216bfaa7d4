// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"unsafe"
)

// Handle identifies one block owned by an Arena. Handles are stable
// slot/generation pairs rather than raw addresses: once a block has been
// reclaimed or reallocated away, its old handle no longer matches the
// record's generation and any further use panics instead of silently
// touching reused memory.
//
// The zero Handle is the nil handle and matches no block.
type Handle struct {
	slot int32
	gen  uint32
}

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool { return h.slot == 0 }

// record is one owned block. Records are never removed from the arena's
// list before Release; the active flag is the only reuse signal.
type record struct {
	buf    []byte
	gen    uint32
	active bool
}

// Arena is a region allocator. It owns an append-only list of block
// records; blocks are handed out by first-fit reuse of inactive records,
// grown by address-changing reallocation, and released all at once.
//
// The zero Arena is empty and ready to use. An Arena is not safe for
// concurrent use.
type Arena struct {
	records []record
	inUse   int
	peak    int
}

// Alloc returns a handle to a zeroed block of at least size bytes. The
// first inactive record with enough capacity is reused (first-fit, linear
// in the number of records); otherwise a new record of exactly size bytes
// is appended.
func (a *Arena) Alloc(size int) Handle {
	if size < 0 {
		panic("memkit: negative allocation size")
	}
	for i := range a.records {
		r := &a.records[i]
		if !r.active && len(r.buf) >= size {
			r.active = true
			r.gen++
			clear(r.buf)
			a.noteAlloc(len(r.buf))
			return Handle{slot: int32(i) + 1, gen: r.gen}
		}
	}
	return a.appendRecord(size)
}

// Bytes returns the block owned by h. The slice covers the record's full
// capacity, which may exceed the size passed to Alloc when the block was
// reused. It is valid until the handle dies.
func (a *Arena) Bytes(h Handle) []byte {
	return a.live(h).buf
}

// Reclaim marks the block owned by h inactive, making its capacity
// eligible for first-fit reuse. The handle is dead afterwards; reclaiming
// it again panics.
func (a *Arena) Reclaim(h Handle) {
	r := a.live(h)
	r.active = false
	a.inUse -= len(r.buf)
}

// Realloc grows the block owned by h to at least size bytes. size must not
// be smaller than the block's current capacity. The old record is marked
// inactive and a brand-new record is created with the old content copied
// forward; the returned handle replaces h, which is dead immediately.
func (a *Arena) Realloc(h Handle, size int) Handle {
	r := a.live(h)
	if size < len(r.buf) {
		panic("memkit: realloc below current capacity")
	}
	old := r.buf
	r.active = false
	a.inUse -= len(old)
	nh := a.appendRecord(size)
	copy(a.records[nh.slot-1].buf, old)
	return nh
}

// Reset marks every record inactive without releasing memory. Every
// previously returned handle is dead; record capacity is retained for
// first-fit reuse.
func (a *Arena) Reset() {
	for i := range a.records {
		a.records[i].active = false
	}
	a.inUse = 0
}

// Release drops every record, returning all memory to the runtime. The
// arena is empty and ready for reuse afterwards.
func (a *Arena) Release() {
	a.records = nil
	a.inUse = 0
}

// CloneBytes copies b into a fresh arena block and returns the copy.
func (a *Arena) CloneBytes(b []byte) []byte {
	h := a.Alloc(len(b))
	dst := a.Bytes(h)[:len(b)]
	copy(dst, b)
	return dst
}

// CloneString copies s into arena-owned storage. The returned string stays
// valid until the arena is reset or released.
func (a *Arena) CloneString(s string) string {
	if len(s) == 0 {
		return ""
	}
	h := a.Alloc(len(s))
	buf := a.Bytes(h)
	copy(buf, s)
	return unsafe.String(unsafe.SliceData(buf), len(s))
}

// live resolves h to its record, panicking on handles that do not belong
// to this arena or whose block has been reclaimed or reallocated away.
func (a *Arena) live(h Handle) *record {
	if h.slot <= 0 || int(h.slot) > len(a.records) {
		panic("memkit: handle does not belong to this arena")
	}
	r := &a.records[h.slot-1]
	if !r.active || r.gen != h.gen {
		panic("memkit: use of reclaimed or reallocated handle")
	}
	return r
}

func (a *Arena) appendRecord(size int) Handle {
	a.records = append(a.records, record{buf: make([]byte, size), gen: 1, active: true})
	a.noteAlloc(size)
	return Handle{slot: int32(len(a.records)), gen: 1}
}

func (a *Arena) noteAlloc(n int) {
	a.inUse += n
	if a.inUse > a.peak {
		a.peak = a.inUse
	}
}
