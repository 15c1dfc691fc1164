// Package asciix provides locale-independent classification and case
// folding for single bytes in the seven-bit ASCII range.
//
// Package: asciix
// Title: ASCII Byte Classification for textkit Foundation
// Description: Byte predicates, hex digit decoding, ASCII-only case
//              conversion and case-insensitive comparison. Bytes outside
//              the ASCII range are never folded and never classified as
//              letters, digits or whitespace.
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
//	asciix.HexDigitValue('b')               // 11
//	asciix.CompareFoldN("ABC", "abd", 2)    // 0
//	asciix.ToLowerN("HeLLo World", 5)       // "hello"
package asciix
