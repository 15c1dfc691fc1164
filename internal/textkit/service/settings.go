// File: settings.go
// Title: Service Settings
// Description: Configuration keys, defaults and validation for the text
//              service, and conversion from a loaded config.Config.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package service

import (
	"github.com/msto63/textkit/foundation/core/config"
)

// EnvPrefix is the environment prefix for configuration overrides
const EnvPrefix = "TEXTKIT"

// Configuration keys
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeySplitDelimiter = "split.delimiter"
	KeySplitCharSet   = "split.charset"
	KeySplitMaxTokens = "split.max_tokens"
	KeySplitStrip     = "split.strip"
	KeyOutputFormat   = "output.format"
	KeyOutputColor    = "output.color"
)

// Defaults returns the value of every key when neither file nor
// environment sets it.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyLogLevel:       "warn",
		KeyLogFormat:      "console",
		KeySplitDelimiter: " ",
		KeySplitCharSet:   false,
		KeySplitMaxTokens: 0,
		KeySplitStrip:     false,
		KeyOutputFormat:   "plain",
		KeyOutputColor:    true,
	}
}

// Rules returns the validation rules for the textkit configuration
func Rules() config.ValidationRules {
	return config.ValidationRules{
		KeyLogLevel:       {OneOf: []string{"trace", "debug", "info", "warn", "error", "fatal", "audit"}},
		KeyLogFormat:      {OneOf: []string{"json", "text", "console", "logfmt"}},
		KeySplitDelimiter: {Required: true},
		KeySplitCharSet:   {Type: "bool"},
		KeySplitMaxTokens: {Type: "int"},
		KeySplitStrip:     {Type: "bool"},
		KeyOutputFormat:   {OneOf: []string{"plain", "json", "table"}},
		KeyOutputColor:    {Type: "bool"},
	}
}

// Settings controls how the service splits input
type Settings struct {
	Delimiter string
	CharSet   bool // treat Delimiter as a set of single-byte delimiters
	MaxTokens int  // values below 1 mean unlimited
	Strip     bool // strip ASCII whitespace from every token
}

// SettingsFromConfig validates cfg and extracts the split settings
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	if err := cfg.Validate(Rules()).Err(); err != nil {
		return Settings{}, err
	}
	return Settings{
		Delimiter: cfg.GetString(KeySplitDelimiter),
		CharSet:   cfg.GetBool(KeySplitCharSet),
		MaxTokens: cfg.GetInt(KeySplitMaxTokens),
		Strip:     cfg.GetBool(KeySplitStrip),
	}, nil
}
