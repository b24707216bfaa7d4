// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"unsafe"
)

// Allocate allocates arena storage for one value of type T and returns the
// owning handle together with a typed pointer into the block.
func Allocate[T any](a *Arena) (Handle, *T) {
	var x T
	h := a.Alloc(int(unsafe.Sizeof(x)))
	return h, Ref[T](a, h)
}

// AllocateSlice allocates arena storage for n values of type T and returns
// the owning handle together with a typed view of the block.
func AllocateSlice[T any](a *Arena, n int) (Handle, []T) {
	var x T
	h := a.Alloc(int(unsafe.Sizeof(x)) * n)
	return h, Slice[T](a, h, n)
}

// Ref reinterprets the block owned by h as a *T. It panics if the block is
// too small to hold a T. Blocks start at the runtime allocator's natural
// alignment, which satisfies any Go type.
func Ref[T any](a *Arena, h Handle) *T {
	var x T
	buf := a.Bytes(h)
	if uintptr(len(buf)) < unsafe.Sizeof(x) {
		panic("memkit: block too small for type")
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(buf)))
}

// Slice reinterprets the block owned by h as a []T of length n.
func Slice[T any](a *Arena, h Handle, n int) []T {
	if n == 0 {
		return nil
	}
	var x T
	buf := a.Bytes(h)
	if uintptr(len(buf)) < unsafe.Sizeof(x)*uintptr(n) {
		panic("memkit: block too small for slice")
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), n)
}
