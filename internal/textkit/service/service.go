// File: service.go
// Title: Text Service
// Description: Application layer over the foundation text utilities. Adds
//              configured split settings, structured logging with timers
//              and hot reconfiguration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package service

import (
	"context"
	"strings"
	"sync"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/asciix"
	"github.com/msto63/textkit/foundation/utils/bufferx"
	"github.com/msto63/textkit/foundation/utils/tokenx"
)

// StripMode selects which ends Strip trims
type StripMode string

const (
	StripLeading  StripMode = "leading"
	StripTrailing StripMode = "trailing"
	StripBoth     StripMode = "both"
)

// CopyResult is the outcome of a bounded copy
type CopyResult struct {
	Text      string `json:"text"`   // bytes that fit, without the terminator
	Needed    int    `json:"needed"` // length of the full input
	Truncated bool   `json:"truncated"`
}

// HexDigit pairs an input byte with its hexadecimal value, -1 if it has none
type HexDigit struct {
	Char  byte
	Value int
}

// Config holds service configuration
type Config struct {
	Settings Settings
	Logger   *log.Logger // nil discards all output
}

// Override adjusts every settings value before it becomes current
type Override func(*Settings)

// Service runs text operations with the current settings. It is safe for
// concurrent use; Reconfigure swaps settings atomically.
type Service struct {
	mu        sync.RWMutex
	settings  Settings
	tokenizer *tokenx.Tokenizer
	logger    *log.Logger

	// applyMu serializes settings changes
	applyMu  sync.Mutex
	base     Settings
	override Override
}

// NewService creates a new text service
func NewService(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}

	s := &Service{logger: logger.WithName("textkit.service")}
	if err := s.Reconfigure(cfg.Settings); err != nil {
		return nil, err
	}
	return s, nil
}

// Reconfigure validates settings and makes them current. An active
// Override is applied on top.
func (s *Service) Reconfigure(settings Settings) error {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	return s.apply(settings, s.override)
}

// SetOverride installs fn as the active Override and reapplies the last
// settings passed to Reconfigure. A nil fn removes the override. On error
// the previous override and settings stay active.
func (s *Service) SetOverride(fn Override) error {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	return s.apply(s.base, fn)
}

func (s *Service) apply(base Settings, override Override) error {
	effective := base
	if override != nil {
		override(&effective)
	}

	mode := tokenx.ModeSubstring
	if effective.CharSet {
		mode = tokenx.ModeCharSet
	}
	tk, err := tokenx.New(tokenx.Options{
		Delimiter: effective.Delimiter,
		Mode:      mode,
		MaxTokens: effective.MaxTokens,
	})
	if err != nil {
		return err
	}

	s.base, s.override = base, override
	s.mu.Lock()
	s.settings = effective
	s.tokenizer = tk
	s.mu.Unlock()

	s.logger.Debug("settings applied", log.Fields{"tokenizer": tk.String(), "strip": effective.Strip})
	return nil
}

// Follow reapplies split settings whenever cfg reloads, keeping any
// Override. Invalid reloads are logged and the previous settings stay active.
func (s *Service) Follow(cfg *config.Config) {
	cfg.OnChange(func(_, cur *config.Config) {
		settings, err := SettingsFromConfig(cur)
		if err == nil {
			err = s.Reconfigure(settings)
		}
		if err != nil {
			s.logger.LogError(err)
			return
		}
		s.logger.Info("configuration reloaded", log.String("file", cur.FilePath()))
	})
	cfg.OnError(s.logger.LogError)
}

// Settings returns the current settings with the override applied
func (s *Service) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Service) start(ctx context.Context, op string, input string) (*log.Timer, error) {
	timer := s.logger.StartTimer(op).WithField("input_len", len(input))
	if err := ctx.Err(); err != nil {
		timer.StopWithError(err)
		return nil, errors.OperationFailed(errors.ModuleService, op, err)
	}
	return timer, nil
}

// Split tokenizes input with the current settings
func (s *Service) Split(ctx context.Context, input string) ([]string, error) {
	timer, err := s.start(ctx, "split", input)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	tk, strip := s.tokenizer, s.settings.Strip
	s.mu.RUnlock()

	v := tk.Split(input)
	tokens := v.Strings()
	v.Release()

	if strip {
		for i, tok := range tokens {
			tokens[i] = bufferx.New(tok).Strip().String()
		}
	}

	timer.WithField("tokens", len(tokens)).Stop()
	return tokens, nil
}

// Strip trims ASCII whitespace from the ends selected by mode
func (s *Service) Strip(ctx context.Context, input string, mode StripMode) (string, error) {
	timer, err := s.start(ctx, "strip", input)
	if err != nil {
		return "", err
	}

	buf := bufferx.New(input)
	switch StripMode(strings.ToLower(string(mode))) {
	case StripLeading:
		buf.StripLeading()
	case StripTrailing:
		buf.StripTrailing()
	case StripBoth, "":
		buf.Strip()
	default:
		err := errors.InvalidInput(errors.ModuleService, "strip", mode, "leading, trailing or both")
		timer.StopWithError(err)
		return "", err
	}

	timer.Stop()
	return buf.String(), nil
}

// Reverse reverses the bytes of input
func (s *Service) Reverse(ctx context.Context, input string) (string, error) {
	timer, err := s.start(ctx, "reverse", input)
	if err != nil {
		return "", err
	}
	out := bufferx.New(input).Reverse().String()
	timer.Stop()
	return out, nil
}

// Delimit replaces every byte of input found in set with replacement.
// An empty set means bufferx.DefaultDelimiters.
func (s *Service) Delimit(ctx context.Context, input, set string, replacement byte) (string, error) {
	timer, err := s.start(ctx, "delimit", input)
	if err != nil {
		return "", err
	}
	out := bufferx.New(input).Delimit(set, replacement).String()
	timer.Stop()
	return out, nil
}

// Copy performs a bounded copy of input into a buffer of capacity bytes
func (s *Service) Copy(ctx context.Context, input string, capacity int) (CopyResult, error) {
	timer, err := s.start(ctx, "copy", input)
	if err != nil {
		return CopyResult{}, err
	}
	if capacity < 0 {
		err := errors.OutOfRange(errors.ModuleService, "copy", capacity, 0, "unbounded")
		timer.StopWithError(err)
		return CopyResult{}, err
	}

	// BoundedCopy never writes past len(input)+1 bytes
	dst := make([]byte, min(capacity, len(input)+1))
	needed := bufferx.BoundedCopy(dst, input)
	result := CopyResult{
		Text:      bufferx.TerminatedString(dst),
		Needed:    needed,
		Truncated: needed >= capacity,
	}

	timer.WithField("truncated", result.Truncated).Stop()
	return result, nil
}

// HexValues decodes every byte of input as a hexadecimal digit
func (s *Service) HexValues(ctx context.Context, input string) ([]HexDigit, error) {
	timer, err := s.start(ctx, "hex", input)
	if err != nil {
		return nil, err
	}
	digits := make([]HexDigit, len(input))
	for i := 0; i < len(input); i++ {
		digits[i] = HexDigit{Char: input[i], Value: asciix.HexDigitValue(input[i])}
	}
	timer.Stop()
	return digits, nil
}

// Lower lowercases the first n bytes of input; n < 0 means all of it
func (s *Service) Lower(ctx context.Context, input string, n int) (string, error) {
	timer, err := s.start(ctx, "lower", input)
	if err != nil {
		return "", err
	}
	out := asciix.ToLowerN(input, n)
	timer.Stop()
	return out, nil
}

// Upper uppercases the first n bytes of input; n < 0 means all of it
func (s *Service) Upper(ctx context.Context, input string, n int) (string, error) {
	timer, err := s.start(ctx, "upper", input)
	if err != nil {
		return "", err
	}
	out := asciix.ToUpperN(input, n)
	timer.Stop()
	return out, nil
}

// CompareFold compares at most n bytes of a and b ignoring ASCII case.
// n < 0 compares the whole strings.
func (s *Service) CompareFold(ctx context.Context, a, b string, n int) (int, error) {
	timer, err := s.start(ctx, "casecmp", a+b)
	if err != nil {
		return 0, err
	}

	var result int
	if n < 0 {
		result = asciix.CompareFold(a, b)
	} else {
		result = asciix.CompareFoldN(a, b, n)
	}

	timer.WithField("result", result).Stop()
	return result, nil
}
