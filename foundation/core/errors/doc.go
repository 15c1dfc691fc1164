// Package errors provides the standard error constructors for the textkit
// foundation modules.
//
// Package: errors
// Title: Standard Error Handling API for textkit Foundation
// Description: Common error patterns, module identifiers and helpers that
//              build *error.Error values with the module and operation
//              recorded in their details. Every foundation package creates
//              its errors through this package.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Module set replaced by asciix, bufferx, vectorx, tokenx
//
// # Error Creation
//
//   - NewErrorBuilder: fluent construction with module, operation, code, details
//   - InvalidInput, OutOfRange, NotFound, OperationFailed: generic patterns
//   - TokenxEmptyDelimiter, BufferxInvalidInput, VectorxIndexOutOfRange:
//     module-specific shortcuts
//
// # Error Analysis
//
//   - ExtractModule / ExtractOperation read the recorded context back
//   - IsModuleOperation matches both at once
//
// Example:
//
//	if _, err := tokenx.Split(s, "", 0); err != nil {
//		if errors.IsModuleOperation(err, errors.ModuleTokenx, "split") {
//			// empty delimiter
//		}
//	}
package errors
