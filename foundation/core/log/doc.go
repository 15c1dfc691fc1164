// Package log provides structured logging for textkit.
//
// Package: log
// Title: textkit Structured Logging
// Description: Leveled logger with persistent context fields, correlation
//              ids, JSON, text, console and logfmt output, and timers for
//              measuring operations. Errors from the error package are
//              logged with their code, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Trimmed to the needs of the text service and CLI
//
// The foundation/utils packages never log. Logging starts at the service
// layer, which wraps each operation in a Timer, and the CLI, which tags
// every entry of one invocation with the same correlation id.
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "textkit",
//	}).WithCorrelationID(id)
//
//	timer := logger.StartTimer("split").WithField("input_len", len(s))
//	v, err := tokenx.Split(s, ",", 0)
//	if err != nil {
//		timer.StopWithError(err)
//		return err
//	}
//	timer.Stop()
package log
