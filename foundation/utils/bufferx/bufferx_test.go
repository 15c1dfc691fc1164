// File: bufferx_test.go
// Title: Unit Tests for In-Place Transforms
// Description: Tests for Buffer construction, in-place transforms and the
//              bounded copy helper.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package bufferx

import (
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"odd length", "onetwothree", "eerhtowteno"},
		{"even length", "onetwothre", "erhtowteno"},
		{"empty", "", ""},
		{"single byte", "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.input)
			if got := b.Reverse().String(); got != tt.expected {
				t.Errorf("Reverse(%q) = %q; want %q", tt.input, got, tt.expected)
			}
			if b.Len() != len(tt.input) {
				t.Errorf("Len() = %d; want %d", b.Len(), len(tt.input))
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fn       func(*Buffer) *Buffer
		expected string
	}{
		{"leading", " \t\n hola", (*Buffer).StripLeading, "hola"},
		{"trailing", "hola  \t", (*Buffer).StripTrailing, "hola"},
		{"both", " \t hola   ", (*Buffer).Strip, "hola"},
		{"leading keeps trailing", "  a b  ", (*Buffer).StripLeading, "a b  "},
		{"trailing keeps leading", "  a b  ", (*Buffer).StripTrailing, "  a b"},
		{"vertical tab and form feed", "\v\fx\r\n", (*Buffer).Strip, "x"},
		{"only whitespace", " \t\r\n", (*Buffer).Strip, ""},
		{"empty", "", (*Buffer).Strip, ""},
		{"non-ascii space kept", "\xa0x\xa0", (*Buffer).Strip, "\xa0x\xa0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.input)
			if got := tt.fn(b).String(); got != tt.expected {
				t.Errorf("strip(%q) = %q; want %q", tt.input, got, tt.expected)
			}
			if b.Len() != len(tt.expected) {
				t.Errorf("Len() = %d; want %d", b.Len(), len(tt.expected))
			}
		})
	}
}

func TestStripDoesNotReallocate(t *testing.T) {
	b := New("   keep   ")
	before := &b.data[:cap(b.data)][0]
	b.Strip()
	if &b.data[:cap(b.data)][0] != before {
		t.Error("Strip() moved the buffer to new storage")
	}
}

func TestDelimit(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		matchSet    string
		replacement byte
		expected    string
	}{
		{"all default delimiters", DefaultDelimiters, "", 'a', "aaaaaaa"},
		{"two delimiters", "hola", "ha", '+', "+ol+"},
		{"no match", "hola", "xyz", '+', "hola"},
		{"duplicate set members", "a-b-c", "--", '.', "a.b.c"},
		{"empty input", "", "ab", '+', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.input)
			if got := b.Delimit(tt.matchSet, tt.replacement).String(); got != tt.expected {
				t.Errorf("Delimit(%q, %q, %q) = %q; want %q", tt.input, tt.matchSet, tt.replacement, got, tt.expected)
			}
		})
	}
}

func TestCanon(t *testing.T) {
	b := New("my-file name.txt")
	if got := b.Canon("abcdefghijklmnopqrstuvwxyz.", '_').String(); got != "my_file_name.txt" {
		t.Errorf("Canon() = %q; want %q", got, "my_file_name.txt")
	}
}

func TestBoundedCopy(t *testing.T) {
	src := "onetwothree"

	tests := []struct {
		name     string
		capacity int
		expected string
	}{
		{"exact fit", len(src) + 1, src},
		{"truncated", 3, "on"},
		{"single byte", 1, ""},
		{"oversized", 12345, src},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.capacity)
			for i := range dst {
				dst[i] = 'z'
			}
			n := BoundedCopy(dst, src)
			if n != len(src) {
				t.Errorf("BoundedCopy() = %d; want %d", n, len(src))
			}
			if got := TerminatedString(dst); got != tt.expected {
				t.Errorf("dst = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestBoundedCopyZeroCapacity(t *testing.T) {
	if n := BoundedCopy(nil, "abc"); n != 3 {
		t.Errorf("BoundedCopy(nil) = %d; want 3", n)
	}
	dst := []byte{}
	if n := BoundedCopy(dst, ""); n != 0 {
		t.Errorf("BoundedCopy(empty) = %d; want 0", n)
	}
}

func TestNilBuffer(t *testing.T) {
	var b *Buffer
	if b.Len() != 0 || b.String() != "" || b.Bytes() != nil || b.Clone() != nil {
		t.Error("nil buffer accessors should report an empty, absent buffer")
	}
	if b.Reverse() != nil || b.Strip() != nil || b.Delimit("", '.') != nil || b.Canon("", '.') != nil {
		t.Error("transforms on a nil buffer should be no-ops")
	}
	if got := b.CString(); len(got) != 1 || got[0] != 0 {
		t.Errorf("CString() = %v; want [0]", got)
	}
}

func TestOwnership(t *testing.T) {
	src := []byte("abc")
	b := FromBytes(src)
	src[0] = 'X'
	if b.String() != "abc" {
		t.Error("FromBytes must copy its input")
	}

	c := b.Clone()
	c.Reverse()
	if b.String() != "abc" || c.String() != "cba" {
		t.Error("Clone must be independent")
	}

	out := b.Bytes()
	out[0] = 'Y'
	if b.String() != "abc" {
		t.Error("Bytes must return a copy")
	}
}

func TestCStringRoundTrip(t *testing.T) {
	b := New("argv0")
	raw := b.CString()
	if len(raw) != 6 || raw[5] != 0 {
		t.Fatalf("CString() = %q", raw)
	}

	back, err := FromCString(append(raw, "garbage"...))
	if err != nil {
		t.Fatalf("FromCString() error = %v", err)
	}
	if back.String() != "argv0" {
		t.Errorf("FromCString() = %q; want argv0", back.String())
	}
}

func TestFromCStringAbsent(t *testing.T) {
	_, err := FromCString(nil)
	if err == nil {
		t.Fatal("FromCString(nil) should fail")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error code = %v; want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
	}
}
