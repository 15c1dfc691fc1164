// File: standards.go
// Title: Module Identifiers and Error Code Mapping
// Description: Module identifiers of the textkit foundation and the mapping
//              from (module, operation) to a default error code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Modules replaced by the text utility packages

package errors

import (
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleAsciix  = "asciix"
	ModuleBufferx = "bufferx"
	ModuleVectorx = "vectorx"
	ModuleTokenx  = "tokenx"
	ModuleConfig  = "config"
	ModuleService = "service"
)

// Standardized error codes shared by all modules
const (
	CodeInvalidInput    = string(mdwerror.CodeInvalidInput)
	CodeInvalidFormat   = string(mdwerror.CodeInvalidFormat)
	CodeOutOfRange      = string(mdwerror.CodeValueOutOfRange)
	CodeNotFound        = string(mdwerror.CodeNotFound)
	CodeOperationFailed = "OPERATION_FAILED"
)

// getModuleErrorCode picks the default code for an operation when the
// builder was not given one explicitly.
func getModuleErrorCode(module, operation string) string {
	switch {
	case strings.Contains(operation, "index"), strings.Contains(operation, "range"):
		return CodeOutOfRange
	case strings.Contains(operation, "parse"), strings.Contains(operation, "format"):
		return CodeInvalidFormat
	}

	switch module {
	case ModuleAsciix, ModuleBufferx, ModuleVectorx, ModuleTokenx:
		return CodeInvalidInput
	case ModuleConfig:
		return string(mdwerror.CodeConfigError)
	default:
		return CodeOperationFailed
	}
}
