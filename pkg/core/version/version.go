// ============================================================================
// textkit - Byte-level string utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and foundation packages
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Textkit is the version of the command line tool
	Textkit = "0.1.0"

	// Foundation is the version of the foundation packages
	Foundation = "0.2.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "foundation":
		return Foundation
	default:
		return Textkit
	}
}
