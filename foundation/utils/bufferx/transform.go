// File: transform.go
// Title: In-Place Transforms
// Description: Reverse, whitespace stripping, delimiter substitution and
//              canonicalisation on a Buffer, plus the bounded copy helper.
//              None of them grows the underlying storage.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package bufferx

import (
	"github.com/msto63/textkit/foundation/utils/asciix"
)

// DefaultDelimiters is the match set Delimit uses when given an empty set.
const DefaultDelimiters = "_-|> <."

// Reverse reverses the bytes of b in place and returns b.
func (b *Buffer) Reverse() *Buffer {
	if b == nil {
		return nil
	}
	for i, j := 0, len(b.data)-1; i < j; i, j = i+1, j-1 {
		b.data[i], b.data[j] = b.data[j], b.data[i]
	}
	return b
}

// StripLeading removes leading ASCII whitespace, shifting the remaining
// bytes to the start, and returns b.
func (b *Buffer) StripLeading() *Buffer {
	if b == nil {
		return nil
	}
	i := 0
	for i < len(b.data) && asciix.IsSpace(b.data[i]) {
		i++
	}
	if i > 0 {
		n := copy(b.data, b.data[i:])
		b.data = b.data[:n]
	}
	return b
}

// StripTrailing removes trailing ASCII whitespace and returns b.
func (b *Buffer) StripTrailing() *Buffer {
	if b == nil {
		return nil
	}
	n := len(b.data)
	for n > 0 && asciix.IsSpace(b.data[n-1]) {
		n--
	}
	b.data = b.data[:n]
	return b
}

// Strip removes ASCII whitespace from both ends and returns b.
func (b *Buffer) Strip() *Buffer {
	return b.StripTrailing().StripLeading()
}

// Delimit overwrites every byte of b that occurs in matchSet with
// replacement and returns b. An empty matchSet selects DefaultDelimiters.
func (b *Buffer) Delimit(matchSet string, replacement byte) *Buffer {
	if b == nil {
		return nil
	}
	if matchSet == "" {
		matchSet = DefaultDelimiters
	}
	set := newByteSet(matchSet)
	for i, c := range b.data {
		if set.has(c) {
			b.data[i] = replacement
		}
	}
	return b
}

// Canon overwrites every byte of b that does NOT occur in validChars with
// substitute and returns b.
func (b *Buffer) Canon(validChars string, substitute byte) *Buffer {
	if b == nil {
		return nil
	}
	set := newByteSet(validChars)
	for i, c := range b.data {
		if !set.has(c) {
			b.data[i] = substitute
		}
	}
	return b
}

// BoundedCopy copies src into dst, writing at most len(dst)-1 bytes of
// src followed by a zero byte. Nothing is written when dst is empty. The
// return value is always len(src), so a result >= len(dst) signals that
// the copy was truncated.
func BoundedCopy(dst []byte, src string) int {
	if len(dst) == 0 {
		return len(src)
	}
	n := copy(dst[:len(dst)-1], src)
	dst[n] = 0
	return len(src)
}

type byteSet [256]bool

func newByteSet(chars string) *byteSet {
	var s byteSet
	for i := 0; i < len(chars); i++ {
		s[chars[i]] = true
	}
	return &s
}

func (s *byteSet) has(c byte) bool {
	return s[c]
}
