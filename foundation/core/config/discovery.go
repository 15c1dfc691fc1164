// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates the textkit configuration file in the working
//              directory and the user's configuration directory.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: Search paths follow os.UserConfigDir, missing files are not an error

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Defaults   map[string]interface{}
	Required   bool // Fail when no file is found
}

// DefaultDiscoveryOptions searches ./<app>.{toml,yaml,yml} and then
// <user config dir>/<app>/config.{toml,yaml,yml}.
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	opts := DiscoveryOptions{
		Paths:      []string{"."},
		Filenames:  []string{app, "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
	if dir, err := os.UserConfigDir(); err == nil {
		opts.Paths = append(opts.Paths, filepath.Join(dir, app))
	}
	return opts
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that exists and is a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// Discover loads the first configuration file found. When none exists and
// Required is false it returns an empty Config backed by defaults and the
// environment.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(options.EnvPrefix, options.Defaults), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}
