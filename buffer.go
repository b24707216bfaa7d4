// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"io"
)

// Buffer is a bytes.Buffer-like type whose storage comes from an Arena.
// It implements io.Reader and io.Writer. Writes append; reads consume from
// the front.
type Buffer struct {
	arena *Arena
	data  Vec[byte]
}

// NewBuffer returns an empty Buffer drawing storage from a.
func NewBuffer(a *Arena) *Buffer {
	return &Buffer{arena: a}
}

// Write implements io.Writer. It appends p to the buffer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	for _, c := range p {
		b.data.Append(b.arena, c)
	}
	return len(p), nil
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		b.data.Append(b.arena, s[i])
	}
	return len(s), nil
}

// WriteByte appends a single byte to the buffer.
func (b *Buffer) WriteByte(c byte) error {
	b.data.Append(b.arena, c)
	return nil
}

// Read implements io.Reader. It copies up to len(p) bytes out of the
// buffer, consuming them. io.EOF is returned when fewer than len(p) bytes
// were available.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.data.Len() == 0 {
		return 0, io.EOF
	}
	items := b.data.Items()
	n := copy(p, items)
	copy(items, items[n:])
	b.data.Truncate(len(items) - n)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// ReadByte consumes and returns the next byte from the buffer.
func (b *Buffer) ReadByte() (byte, error) {
	if b.data.Len() == 0 {
		return 0, io.EOF
	}
	items := b.data.Items()
	c := items[0]
	copy(items, items[1:])
	b.data.Truncate(len(items) - 1)
	return c, nil
}

// Bytes returns the unread portion of the buffer. The slice is valid only
// until the next buffer modification.
func (b *Buffer) Bytes() []byte { return b.data.Items() }

// String returns the unread portion of the buffer as a string.
func (b *Buffer) String() string { return string(b.data.Items()) }

// Len returns the number of unread bytes.
func (b *Buffer) Len() int { return b.data.Len() }

// Cap returns the capacity of the buffer's backing block.
func (b *Buffer) Cap() int { return b.data.Cap() }

// Reset empties the buffer, keeping its storage for reuse.
func (b *Buffer) Reset() { b.data.Truncate(0) }

// Truncate discards all but the first n unread bytes. It panics if n is
// negative or greater than the buffer length.
func (b *Buffer) Truncate(n int) { b.data.Truncate(n) }
