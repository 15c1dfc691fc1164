// File: asciix_test.go
// Title: Unit Tests for ASCII Classification
// Description: Tests for byte predicates, hex digit decoding, case folding
//              and bounded case-insensitive comparison.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package asciix

import (
	"testing"
)

func TestHexDigitValueOutsideRanges(t *testing.T) {
	tests := []struct {
		name  string
		input byte
	}{
		{"'9' + 1", '9' + 1},
		{"'0' - 1", '0' - 1},
		{"'a' - 1", 'a' - 1},
		{"'f' + 1", 'f' + 1},
		{"'A' - 1", 'A' - 1},
		{"'F' + 1", 'F' + 1},
		{"nul", 0},
		{"high byte", 0xE4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexDigitValue(tt.input); got != -1 {
				t.Errorf("HexDigitValue(%q) = %d; want -1", tt.input, got)
			}
		})
	}
}

func TestHexDigitValueInsideRanges(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		if got := HexDigitValue(c); got != int(c-'0') {
			t.Errorf("HexDigitValue(%q) = %d; want %d", c, got, c-'0')
		}
	}
	for c := byte('a'); c <= 'f'; c++ {
		if got := HexDigitValue(c); got != int(c-'a')+10 {
			t.Errorf("HexDigitValue(%q) = %d; want %d", c, got, int(c-'a')+10)
		}
	}
	for c := byte('A'); c <= 'F'; c++ {
		if got := HexDigitValue(c); got != int(c-'A')+10 {
			t.Errorf("HexDigitValue(%q) = %d; want %d", c, got, int(c-'A')+10)
		}
	}
}

func TestDigitValue(t *testing.T) {
	if DigitValue('7') != 7 {
		t.Errorf("DigitValue('7') = %d", DigitValue('7'))
	}
	if DigitValue('a') != -1 || DigitValue('/') != -1 || DigitValue(':') != -1 {
		t.Error("DigitValue should be -1 outside '0'..'9'")
	}
}

func TestIsSpace(t *testing.T) {
	for _, c := range []byte{' ', '\t', '\n', '\r', '\v', '\f'} {
		if !IsSpace(c) {
			t.Errorf("IsSpace(%q) = false", c)
		}
	}
	for _, c := range []byte{'a', 0, 0x85, 0xA0, '_'} {
		if IsSpace(c) {
			t.Errorf("IsSpace(%q) = true", c)
		}
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(byte) bool
		yes  string
		no   string
	}{
		{"IsDigit", IsDigit, "0123456789", "/:aA \xff"},
		{"IsXDigit", IsXDigit, "09afAF", "gG/:@`"},
		{"IsUpper", IsUpper, "AZ", "@[az\xc4"},
		{"IsLower", IsLower, "az", "`{AZ\xe4"},
		{"IsAlpha", IsAlpha, "azAZ", "09@[`{\xe4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < len(tt.yes); i++ {
				if !tt.fn(tt.yes[i]) {
					t.Errorf("%s(%q) = false", tt.name, tt.yes[i])
				}
			}
			for i := 0; i < len(tt.no); i++ {
				if tt.fn(tt.no[i]) {
					t.Errorf("%s(%q) = true", tt.name, tt.no[i])
				}
			}
		})
	}
}

func TestToLowerToUpper(t *testing.T) {
	if ToLower('Q') != 'q' || ToLower('q') != 'q' || ToLower('$') != '$' || ToLower(0xC4) != 0xC4 {
		t.Error("ToLower folded incorrectly")
	}
	if ToUpper('q') != 'Q' || ToUpper('Q') != 'Q' || ToUpper('~') != '~' || ToUpper(0xE4) != 0xE4 {
		t.Error("ToUpper folded incorrectly")
	}
}

func TestCompareFoldN(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		n    int
		sign int
	}{
		{"equal first byte", "123", "123", 1, 0},
		{"greater first byte", "423", "123", 1, 1},
		{"less first byte", "123", "423", 1, -1},
		{"bound beyond both", "1", "1", 10, 0},
		{"case folded", "HeLLo", "hello", 5, 0},
		{"difference after bound", "abcX", "ABCy", 3, 0},
		{"difference inside bound", "abcX", "ABCy", 4, -1},
		{"shorter first", "ab", "abc", 3, -1},
		{"longer first", "abc", "AB", 3, 1},
		{"zero bound", "a", "b", 0, 0},
		{"non-ascii raw", "\xc4", "\xe4", 1, -1},
		{"folded letter vs punctuation", "[", "a", 1, -1},
		{"embedded zero longer", "a\x00", "a", 5, 1},
		{"embedded zero shorter", "a", "A\x00", 5, -1},
		{"embedded zero past bound", "a\x00", "a", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareFoldN(tt.a, tt.b, tt.n)
			if sign(got) != tt.sign {
				t.Errorf("CompareFoldN(%q, %q, %d) = %d; want sign %d", tt.a, tt.b, tt.n, got, tt.sign)
			}
		})
	}
}

func TestCompareFoldAndEqualFold(t *testing.T) {
	if CompareFold("Version", "VERSION") != 0 {
		t.Error("CompareFold should ignore ASCII case")
	}
	if CompareFold("abc", "abd") >= 0 {
		t.Error("CompareFold(abc, abd) should be negative")
	}
	if !EqualFold("Culture=Neutral", "culture=neutral") {
		t.Error("EqualFold should match")
	}
	if EqualFold("abc", "abcd") {
		t.Error("EqualFold must compare lengths")
	}
}

func TestToLowerN(t *testing.T) {
	a := "~09+AaBcDeFzZ$0909EmPAbCdEEEEEZZZZAAA"
	b := "~09+aabcdefzz$0909empabcdeeeeezzzzaaa"

	c := ToLowerN(a, len(b))
	if CompareFoldN(b, c, len(b)) != 0 {
		t.Errorf("CompareFoldN(%q, %q) != 0", b, c)
	}
	if c != b {
		t.Errorf("ToLowerN() = %q; want %q", c, b)
	}

	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{"prefix only", "HELLO World", 5, "hello"},
		{"zero length", "ABC", 0, ""},
		{"negative means all", "ABC", -1, "abc"},
		{"bound past end", "AbC", 10, "abc"},
		{"non-ascii untouched", "\xc4BC", 3, "\xc4bc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLowerN(tt.input, tt.n); got != tt.expected {
				t.Errorf("ToLowerN(%q, %d) = %q; want %q", tt.input, tt.n, got, tt.expected)
			}
		})
	}
}

func TestToUpperN(t *testing.T) {
	if got := ToUpperN("hello, world", 5); got != "HELLO" {
		t.Errorf("ToUpperN() = %q; want HELLO", got)
	}
	if got := ToUpperN("a1b2", -1); got != "A1B2" {
		t.Errorf("ToUpperN() = %q; want A1B2", got)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
