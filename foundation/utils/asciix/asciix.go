// File: asciix.go
// Title: ASCII Classification and Case Folding
// Description: Byte-level ASCII predicates, digit decoding, case
//              conversion and bounded case-insensitive comparison.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package asciix

// IsSpace reports whether b is space, tab, newline, carriage return,
// vertical tab or form feed.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// IsDigit reports whether b is '0'..'9'.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsXDigit reports whether b is a hexadecimal digit in either case.
func IsXDigit(b byte) bool {
	return HexDigitValue(b) >= 0
}

// IsUpper reports whether b is 'A'..'Z'.
func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsLower reports whether b is 'a'..'z'.
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return IsUpper(b) || IsLower(b)
}

// ToLower folds an ASCII uppercase letter to lowercase; every other byte
// is returned unchanged.
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b + ('a' - 'A')
	}
	return b
}

// ToUpper folds an ASCII lowercase letter to uppercase; every other byte
// is returned unchanged.
func ToUpper(b byte) byte {
	if IsLower(b) {
		return b - ('a' - 'A')
	}
	return b
}

// DigitValue returns 0..9 for '0'..'9' and -1 for anything else.
func DigitValue(b byte) int {
	if IsDigit(b) {
		return int(b - '0')
	}
	return -1
}

// HexDigitValue returns 0..15 for '0'..'9', 'a'..'f' and 'A'..'F' and -1
// for anything else.
func HexDigitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// byteAt returns s[i], or 0 past the end of s. Running off the end of a
// string therefore compares like a terminator.
func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// CompareFoldN compares at most n bytes of a and b after folding ASCII
// letters to lowercase. The result is negative, zero or positive as the
// first differing folded byte of a is less than, equal to or greater than
// that of b. A string that ends first compares as if followed by a zero
// byte. When that padding makes the bounded prefixes equal, the shorter
// prefix orders first, so "a\x00" and "a" still differ. Bytes outside the
// ASCII range compare by raw value.
func CompareFoldN(a, b string, n int) int {
	for i := 0; i < n; i++ {
		if i >= len(a) && i >= len(b) {
			break
		}
		ca := ToLower(byteAt(a, i))
		cb := ToLower(byteAt(b, i))
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	return min(len(a), max(n, 0)) - min(len(b), max(n, 0))
}

// CompareFold is CompareFoldN over the whole of both strings.
func CompareFold(a, b string) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	return CompareFoldN(a, b, n)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	return len(a) == len(b) && CompareFoldN(a, b, len(a)) == 0
}

// ToLowerN returns a new string holding the first n bytes of s with ASCII
// uppercase letters folded to lowercase. A negative n, or one larger than
// s, selects the whole of s.
func ToLowerN(s string, n int) string {
	return mapN(s, n, ToLower)
}

// ToUpperN returns a new string holding the first n bytes of s with ASCII
// lowercase letters folded to uppercase. A negative n, or one larger than
// s, selects the whole of s.
func ToUpperN(s string, n int) string {
	return mapN(s, n, ToUpper)
}

func mapN(s string, n int, fn func(byte) byte) string {
	if n < 0 || n > len(s) {
		n = len(s)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = fn(s[i])
	}
	return string(out)
}
