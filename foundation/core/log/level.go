// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter output, plus parsing from
//              configuration strings and console styling per level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Console styling moved to lipgloss, parse errors use mdwerror

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every byte-level step. Development only.
	LevelTrace Level = iota

	// LevelDebug logs one line per service operation
	LevelDebug

	// LevelInfo is the default level
	LevelInfo

	// LevelWarn indicates rejected input or recoverable problems
	LevelWarn

	// LevelError represents failed operations
	LevelError

	// LevelFatal is logged right before the process exits
	LevelFatal

	// LevelAudit is always written regardless of the minimum level
	LevelAudit
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal", "audit"}
var levelShort = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "FTL", "AUD"}

// lipgloss ANSI 256 palette indices
var levelColors = [...]lipgloss.Color{"245", "37", "35", "214", "196", "201", "33"}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelAudit
}

// String returns the string representation of the log level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l]
}

// ShortString returns the three-letter tag used by text formatters
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelShort[l]
}

// Style returns the console style for the level.
func (l Level) Style() lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if !l.valid() {
		return style
	}
	return style.Foreground(levelColors[l])
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a configuration string into a level. Unknown input
// yields LevelInfo together with a CodeInvalidConfig error.
func ParseLevel(level string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "information":
		return LevelInfo, nil
	case "warning":
		return LevelWarn, nil
	}
	for i := range levelNames {
		if normalized == levelNames[i] || normalized == strings.ToLower(levelShort[i]) {
			return Level(i), nil
		}
	}
	return LevelInfo, parseError("level", level)
}

func parseError(kind, input string) *mdwerror.Error {
	return mdwerror.New("invalid log "+kind+": "+input).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("log.parse_" + kind).
		WithDetail("input", input)
}

// AllLevels returns all available log levels
func AllLevels() []Level {
	levels := make([]Level, 0, len(levelNames))
	for i := range levelNames {
		levels = append(levels, Level(i))
	}
	return levels
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelInfo
}
