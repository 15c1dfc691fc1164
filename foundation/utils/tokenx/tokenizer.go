// File: tokenizer.go
// Title: Reusable Tokenizer Configuration
// Description: Tokenizer bundles a validated delimiter, split mode and
//              token cap so one configuration can be applied to many inputs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tokenx

import (
	"fmt"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/vectorx"
)

// Mode selects how the delimiter is interpreted.
type Mode int

const (
	// ModeSubstring matches the delimiter verbatim
	ModeSubstring Mode = iota

	// ModeCharSet matches any single byte of the delimiter
	ModeCharSet
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeSubstring:
		return "substring"
	case ModeCharSet:
		return "charset"
	default:
		return "unknown"
	}
}

// Options configures a Tokenizer.
type Options struct {
	Delimiter string
	Mode      Mode
	MaxTokens int
}

// Tokenizer applies one validated Options value to any number of inputs.
// It holds no mutable state and is safe for concurrent use.
type Tokenizer struct {
	opts  Options
	match matcher
}

// New validates opts and returns a Tokenizer.
func New(opts Options) (*Tokenizer, error) {
	if opts.Delimiter == "" {
		return nil, errors.TokenxEmptyDelimiter("new")
	}

	t := &Tokenizer{opts: opts}
	switch opts.Mode {
	case ModeSubstring:
		t.match = substringMatcher(opts.Delimiter)
	case ModeCharSet:
		t.match = charSetMatcher(opts.Delimiter)
	default:
		return nil, errors.InvalidInput(errors.ModuleTokenx, "new", opts.Mode, "substring or charset mode")
	}
	return t, nil
}

// Options returns the configuration the tokenizer was built with.
func (t *Tokenizer) Options() Options {
	return t.opts
}

// Split tokenizes input.
func (t *Tokenizer) Split(input string) *vectorx.Vector {
	return collect(scan(input, t.match, t.opts.MaxTokens))
}

// String describes the tokenizer for logs.
func (t *Tokenizer) String() string {
	return fmt.Sprintf("tokenizer{mode=%s delimiter=%q max=%d}", t.opts.Mode, t.opts.Delimiter, t.opts.MaxTokens)
}
