// SPDX-License-Identifier: Apache-2.0

package memkit

// BitVec is a growable bitset backed by arena storage. The zero BitVec is
// empty; bits beyond the backing length read as unset.
type BitVec struct {
	bits []byte
	h    Handle
}

// Set sets bit, growing the backing block through a to cover it if needed.
// Growth preserves previously set bits; new bytes start cleared.
func (b *BitVec) Set(a *Arena, bit uint) {
	index := int(bit / 8)
	mask := byte(1) << (bit % 8)
	if len(b.bits) == 0 {
		b.h = a.Alloc(index + 1)
		b.bits = a.Bytes(b.h)
	} else if index >= len(b.bits) {
		b.h = a.Realloc(b.h, index+1)
		b.bits = a.Bytes(b.h)
	}
	b.bits[index] |= mask
}

// Test reports whether bit is set.
func (b *BitVec) Test(bit uint) bool {
	index := int(bit / 8)
	if index >= len(b.bits) {
		return false
	}
	return b.bits[index]&(byte(1)<<(bit%8)) != 0
}

// Len returns the backing length in bytes.
func (b *BitVec) Len() int { return len(b.bits) }
