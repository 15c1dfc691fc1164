// Package tokenx splits strings into vectorx.Vector values, either at an
// exact delimiter substring or at any byte of a delimiter set, with an
// optional cap on the number of tokens.
//
// Package: tokenx
// Title: Bounded String Tokenizer for textkit Foundation
// Description: Split and SplitAny are stateless left-to-right scans.
//              Bytes accumulate into the current token until a split
//              point, the token cap, or the end of input is reached.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Token Semantics
//
//   - maxTokens <= 0: every delimiter occurrence splits. A delimiter at the
//     very end produces a trailing empty token.
//   - maxTokens > 0: after maxTokens-1 tokens have been produced the rest
//     of the input, delimiters included, becomes the last token verbatim.
//     With fewer delimiters than that, the result is simply shorter; it is
//     never padded. maxTokens == 1 returns the input unsplit.
//   - Empty input yields a vector with one empty token, never an empty
//     vector.
//   - Split matches non-overlapping occurrences of the substring, so
//     "XYXY" holds two occurrences of "XY". SplitAny treats every member
//     byte as its own one-byte split point: adjacent members produce empty
//     tokens between them. Repeated bytes in the set have no effect.
//   - An empty delimiter or delimiter set is rejected with an error coded
//     INVALID_INPUT.
//
// Usage:
//
//	v, err := tokenx.Split("abcXYdefXghiXYjklYmno", "XY", 2)
//	// v: ["abc", "defXghiXYjklYmno"]
//
//	v, err = tokenx.SplitAny("abcXdefYghi", "XY", 0)
//	// v: ["abc", "def", "ghi"]
package tokenx
