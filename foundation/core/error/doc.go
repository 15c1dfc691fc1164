// Package error provides the structured error type used across textkit.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: Structured errors carrying a code, a severity, the failing
//              operation and free-form details. Every error returned by the
//              foundation packages is an *Error so callers can branch on
//              codes instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reduced code set to the text utility domain
//
// Usage:
//
//	err := error.New("delimiter must not be empty").
//		WithCode(error.CodeInvalidInput).
//		WithOperation("tokenx.split")
//
//	if error.HasCode(err, error.CodeInvalidInput) {
//		// reject the request
//	}
package error
