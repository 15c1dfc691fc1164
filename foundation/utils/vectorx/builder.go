// File: builder.go
// Title: Vector Builder
// Description: Append-only builder that hands a fully constructed Vector
//              to its caller in one step.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package vectorx

import (
	"strings"
)

// Builder accumulates elements and produces a Vector. A Vector is only
// observable once Build returns, so a failed construction never leaks a
// partially filled vector.
type Builder struct {
	elems []string
	built bool
}

// NewBuilder returns a builder with room for sizeHint elements.
func NewBuilder(sizeHint int) *Builder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Builder{elems: make([]string, 0, sizeHint)}
}

// Append adds a private copy of s. Appending after Build panics.
func (b *Builder) Append(s string) {
	if b.built {
		panic("vectorx: Append after Build")
	}
	b.elems = append(b.elems, strings.Clone(s))
}

// Len returns the number of elements appended so far.
func (b *Builder) Len() int {
	return len(b.elems)
}

// Build transfers the accumulated elements into a new Vector. The builder
// cannot be reused.
func (b *Builder) Build() *Vector {
	b.built = true
	v := adopt(b.elems)
	b.elems = nil
	return v
}
