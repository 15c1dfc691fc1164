// File: vectorx.go
// Title: String Vector
// Description: Vector construction, duplication, release, element access
//              and boundary conversion to terminated pointer arrays.
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

	"github.com/msto63/textkit/foundation/core/errors"
)

// Vector is an owned, ordered sequence of strings.
type Vector struct {
	elems []string
}

// New builds a vector holding a private copy of every element, in order.
// New with no arguments returns an empty, non-nil vector.
func New(elems ...string) *Vector {
	v := &Vector{elems: make([]string, len(elems))}
	for i, s := range elems {
		v.elems[i] = strings.Clone(s)
	}
	return v
}

// adopt wraps elems without copying. The caller hands over ownership.
func adopt(elems []string) *Vector {
	if elems == nil {
		elems = []string{}
	}
	return &Vector{elems: elems}
}

// Len returns the number of elements. A nil vector has length zero.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.elems)
}

// At returns the element at index i.
func (v *Vector) At(i int) (string, error) {
	if i < 0 || i >= v.Len() {
		return "", errors.VectorxIndexOutOfRange("index", i, v.Len())
	}
	return v.elems[i], nil
}

// Strings returns a copy of the elements as a slice. A nil vector yields
// nil, an empty vector an empty non-nil slice.
func (v *Vector) Strings() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.elems))
	copy(out, v.elems)
	return out
}

// Dup returns a deep copy of v. Dup of a nil vector is nil; Dup of an
// empty vector is a new empty vector.
func (v *Vector) Dup() *Vector {
	if v == nil {
		return nil
	}
	return New(v.elems...)
}

// Release drops every element and then the container's storage. The
// vector is left empty. Releasing a nil vector is a no-op.
func (v *Vector) Release() {
	if v == nil {
		return
	}
	for i := range v.elems {
		v.elems[i] = ""
	}
	v.elems = []string{}
}

// Join concatenates the elements with sep between consecutive ones.
func (v *Vector) Join(sep string) string {
	if v == nil {
		return ""
	}
	return strings.Join(v.elems, sep)
}

// Contains reports whether s is one of the elements.
func (v *Vector) Contains(s string) bool {
	for i := 0; i < v.Len(); i++ {
		if v.elems[i] == s {
			return true
		}
	}
	return false
}

// Equal reports whether v and other hold the same elements in the same
// order. Two nil vectors are equal; a nil and an empty vector are not.
func (v *Vector) Equal(other *Vector) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.elems) != len(other.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != other.elems[i] {
			return false
		}
	}
	return true
}

// Terminated returns the elements as an array of pointers followed by a
// single nil end marker. An empty vector yields a one-slot array holding
// only the marker; a nil vector yields nil.
func (v *Vector) Terminated() []*string {
	if v == nil {
		return nil
	}
	out := make([]*string, len(v.elems)+1)
	for i := range v.elems {
		s := v.elems[i]
		out[i] = &s
	}
	return out
}

// FromTerminated builds a vector from the pointers in raw that precede the
// first nil. A nil raw is an absent array and yields a nil vector. Slots
// after the end marker are ignored.
func FromTerminated(raw []*string) *Vector {
	if raw == nil {
		return nil
	}
	elems := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == nil {
			break
		}
		elems = append(elems, strings.Clone(*p))
	}
	return adopt(elems)
}

// Concat returns the concatenation of parts as a single new string.
func Concat(parts ...string) string {
	return strings.Join(parts, "")
}
