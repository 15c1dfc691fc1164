// Package bufferx provides Buffer, a mutable, length-tracked byte string
// owned by a single holder, and the in-place transforms that operate on it.
//
// Package: bufferx
// Title: In-Place String Transforms for textkit Foundation
// Description: Go strings are immutable, so edits that must not reallocate
//              (strip, reverse, delimiter substitution) need a separate
//              mutable abstraction. Buffer fixes its capacity at creation;
//              every transform runs in O(length) and only ever shortens or
//              rewrites the existing bytes. BoundedCopy implements the
//              terminator-based truncating copy used at interop boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	b := bufferx.New(" \t hola   ")
//	b.Strip()
//	b.String() // "hola"
//
//	dst := make([]byte, 3)
//	n := bufferx.BoundedCopy(dst, "onetwothree") // n == 11
//	bufferx.TerminatedString(dst)               // "on"
//
// A Buffer must not be mutated from several goroutines at once; callers
// that share one provide their own locking.
package bufferx
