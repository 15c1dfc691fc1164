// File: buffer.go
// Title: Mutable Owned String Buffer
// Description: Buffer type, constructors and boundary conversions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package bufferx

import (
	"bytes"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Buffer is a singly-owned, length-tracked byte string that can be edited
// in place. The zero value is an empty buffer.
type Buffer struct {
	data []byte
}

// New returns a buffer holding a private copy of s.
func New(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// FromBytes returns a buffer holding a private copy of p.
func FromBytes(p []byte) *Buffer {
	return &Buffer{data: bytes.Clone(p)}
}

// FromCString returns a buffer holding the bytes of p up to the first zero
// byte. A nil p is an absent string and is rejected.
func FromCString(p []byte) (*Buffer, error) {
	if p == nil {
		return nil, errors.BufferxInvalidInput("from_cstring", nil)
	}
	return New(TerminatedString(p)), nil
}

// Len returns the current length in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// String returns the current content as an immutable string.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Bytes returns a copy of the current content.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return bytes.Clone(b.data)
}

// CString returns a copy of the content followed by a single zero byte,
// for consumers that expect terminator-based strings.
func (b *Buffer) CString() []byte {
	out := make([]byte, b.Len()+1)
	if b != nil {
		copy(out, b.data)
	}
	return out
}

// Clone returns an independent copy. Cloning a nil buffer yields nil.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	return FromBytes(b.data)
}

// TerminatedString reads p up to, not including, the first zero byte. If
// p holds no zero byte the whole slice is returned.
func TerminatedString(p []byte) string {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return string(p[:i])
	}
	return string(p)
}
