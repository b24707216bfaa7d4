// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaAllocReturnsZeroedBlock(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(64)
	buf := a.Bytes(h)
	require.Len(t, buf, 64)
	for _, c := range buf {
		require.Zero(t, c)
	}
}

func TestArenaFirstFitReuse(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(64)
	buf := a.Bytes(h)
	for i := range buf {
		buf[i] = 0xff
	}
	a.Reclaim(h)

	// A smaller request must be satisfiable by the reclaimed record.
	h2 := a.Alloc(16)
	require.Equal(t, 1, a.NumRecords())

	// Reused blocks expose their full capacity, zeroed again.
	buf2 := a.Bytes(h2)
	require.Len(t, buf2, 64)
	for _, c := range buf2 {
		require.Zero(t, c)
	}
}

func TestArenaReuseSkipsUndersizedRecords(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(16)
	a.Reclaim(h)

	// Too big for the reclaimed record, so a new one is appended.
	a.Alloc(64)
	require.Equal(t, 2, a.NumRecords())
}

func TestArenaReuseIsFirstFit(t *testing.T) {
	var a Arena
	defer a.Release()

	h1 := a.Alloc(32)
	h2 := a.Alloc(64)
	a.Reclaim(h1)
	a.Reclaim(h2)

	// Both records qualify; the earlier one wins.
	h3 := a.Alloc(16)
	require.Len(t, a.Bytes(h3), 32)
}

func TestArenaReallocPreservesContent(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(32)
	buf := a.Bytes(h)
	for i := range buf {
		buf[i] = byte(i)
	}

	h2 := a.Realloc(h, 100)
	buf2 := a.Bytes(h2)
	require.Len(t, buf2, 100)
	for i := 0; i < 32; i++ {
		require.Equal(t, byte(i), buf2[i])
	}
	for i := 32; i < 100; i++ {
		require.Zero(t, buf2[i])
	}

	// The old handle died with the reallocation.
	require.Panics(t, func() { a.Bytes(h) })
}

func TestArenaReallocSameSize(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(16)
	h2 := a.Realloc(h, 16)
	require.Len(t, a.Bytes(h2), 16)
}

func TestArenaReallocShrinkPanics(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(64)
	require.Panics(t, func() { a.Realloc(h, 32) })
}

func TestArenaStaleHandlePanics(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(8)
	a.Reclaim(h)
	require.Panics(t, func() { a.Reclaim(h) })
	require.Panics(t, func() { a.Bytes(h) })
	require.Panics(t, func() { a.Realloc(h, 16) })

	// A reused slot bumps the generation, so the old handle stays dead.
	h2 := a.Alloc(8)
	require.Panics(t, func() { a.Bytes(h) })
	require.NotPanics(t, func() { a.Bytes(h2) })
}

func TestArenaNilHandlePanics(t *testing.T) {
	var a Arena
	defer a.Release()

	var h Handle
	require.True(t, h.IsNil())
	require.Panics(t, func() { a.Bytes(h) })
}

func TestArenaResetKeepsCapacity(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(128)
	a.Reset()

	require.Equal(t, 0, a.Len())
	require.Equal(t, 128, a.Cap())
	require.Panics(t, func() { a.Bytes(h) })

	// The record is available for reuse.
	h2 := a.Alloc(100)
	require.Equal(t, 1, a.NumRecords())
	require.Len(t, a.Bytes(h2), 128)
}

func TestArenaRelease(t *testing.T) {
	var a Arena

	a.Alloc(128)
	a.Release()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())
	require.Equal(t, 0, a.NumRecords())

	// Empty and reusable after release.
	a.Alloc(8)
	require.Equal(t, 1, a.NumRecords())
	a.Release()
}

func TestArenaCloneString(t *testing.T) {
	var a Arena
	defer a.Release()

	s := a.CloneString("hello")
	require.Equal(t, "hello", s)
	require.Equal(t, "", a.CloneString(""))
}

func TestArenaCloneBytes(t *testing.T) {
	var a Arena
	defer a.Release()

	src := []byte{1, 2, 3}
	dst := a.CloneBytes(src)
	require.Equal(t, src, dst)

	src[0] = 9
	require.Equal(t, byte(1), dst[0])
}

func TestAllocateAndRef(t *testing.T) {
	var a Arena
	defer a.Release()

	h, p := Allocate[int64](&a)
	*p = 42
	require.Equal(t, int64(42), *Ref[int64](&a, h))
}

func TestAllocateSlice(t *testing.T) {
	var a Arena
	defer a.Release()

	h, s := AllocateSlice[uint32](&a, 10)
	require.Len(t, s, 10)
	for i := range s {
		s[i] = uint32(i)
	}

	again := Slice[uint32](&a, h, 10)
	for i := range again {
		require.Equal(t, uint32(i), again[i])
	}
}

func TestRefPanicsOnUndersizedBlock(t *testing.T) {
	var a Arena
	defer a.Release()

	h := a.Alloc(1)
	require.Panics(t, func() { Ref[int64](&a, h) })
}
