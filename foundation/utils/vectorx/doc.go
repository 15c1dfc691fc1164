// Package vectorx provides Vector, an owned, ordered sequence of strings
// with an explicit length.
//
// Package: vectorx
// Title: String Vectors for textkit Foundation
// Description: Vector is the container returned by the tokenizer. A nil
//              *Vector means "no vector"; a non-nil Vector with zero
//              elements is a valid, empty vector and the two are never
//              conflated. Conversion to and from the nil-terminated pointer
//              array used by argument-vector consumers happens only at the
//              boundary (Terminated, FromTerminated); internal code relies
//              on the explicit length.
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
//	v := vectorx.New("one", "two", "three")
//	w := v.Dup()
//	v.Release()
//	w.Len() // 3
package vectorx
