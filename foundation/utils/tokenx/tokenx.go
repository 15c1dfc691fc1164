// File: tokenx.go
// Title: Substring and Character-Set Tokenizer
// Description: Split, SplitAny and their iterator forms. Both modes share
//              one scanner parameterised by a delimiter matcher.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tokenx

import (
	"iter"
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/vectorx"
)

// matcher finds the next split point in s, returning its offset and
// width, or -1 when s holds no further delimiter.
type matcher func(s string) (idx, width int)

func substringMatcher(delim string) matcher {
	return func(s string) (int, int) {
		return strings.Index(s, delim), len(delim)
	}
}

func charSetMatcher(chars string) matcher {
	var set [256]bool
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return func(s string) (int, int) {
		for i := 0; i < len(s); i++ {
			if set[s[i]] {
				return i, 1
			}
		}
		return -1, 0
	}
}

// scan yields the tokens of input in order. It always yields at least one
// token.
func scan(input string, match matcher, maxTokens int) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := input
		emitted := 0
		for maxTokens <= 0 || emitted < maxTokens-1 {
			idx, width := match(rest)
			if idx < 0 {
				break
			}
			if !yield(rest[:idx]) {
				return
			}
			emitted++
			rest = rest[idx+width:]
		}
		yield(rest)
	}
}

func collect(seq iter.Seq[string]) *vectorx.Vector {
	b := vectorx.NewBuilder(4)
	for tok := range seq {
		b.Append(tok)
	}
	return b.Build()
}

// Split splits input at each non-overlapping occurrence of delimiter,
// producing at most maxTokens tokens when maxTokens > 0.
func Split(input, delimiter string, maxTokens int) (*vectorx.Vector, error) {
	seq, err := SplitSeq(input, delimiter, maxTokens)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// SplitAny splits input at every byte that occurs in delimiters, producing
// at most maxTokens tokens when maxTokens > 0.
func SplitAny(input, delimiters string, maxTokens int) (*vectorx.Vector, error) {
	seq, err := SplitAnySeq(input, delimiters, maxTokens)
	if err != nil {
		return nil, err
	}
	return collect(seq), nil
}

// SplitSeq is the lazy form of Split. Tokens are substrings of input.
func SplitSeq(input, delimiter string, maxTokens int) (iter.Seq[string], error) {
	if delimiter == "" {
		return nil, errors.TokenxEmptyDelimiter("split")
	}
	return scan(input, substringMatcher(delimiter), maxTokens), nil
}

// SplitAnySeq is the lazy form of SplitAny. Tokens are substrings of input.
func SplitAnySeq(input, delimiters string, maxTokens int) (iter.Seq[string], error) {
	if delimiters == "" {
		return nil, errors.TokenxEmptyDelimiter("split_any")
	}
	return scan(input, charSetMatcher(delimiters), maxTokens), nil
}
