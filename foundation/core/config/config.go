// File: config.go
// Title: Core Configuration Management Implementation
// Description: Config type with loading from TOML or YAML files and strings,
//              dotted key access, typed getters with defaults and
//              environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Dotted defaults, env lookups without caching, fsnotify watching

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds parsed configuration data. All methods are safe for
// concurrent use, including while a watcher reloads the file.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}

	handlers      []ChangeHandler
	errorHandlers []func(error)
	watcher       *fsnotify.Watcher
	watchDone     chan struct{}
}

// ChangeHandler is called after a reload. oldConfig is a detached snapshot
// of the previous values.
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Values for missing keys, keyed by dotted path
	Watch     bool                   // Start watching the file after loading
}

// New returns an empty configuration. Getters fall back to defaults and
// environment overrides with the given prefix.
func New(envPrefix string, defaults map[string]interface{}) *Config {
	c := &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
		defaults:  defaults,
	}
	applyDefaults(c.data, defaults)
	return c
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := readFile(filePath, format)
	if err != nil {
		return nil, err
	}
	applyDefaults(data, options.Defaults)

	c := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
	}

	if options.Watch {
		if err := c.Watch(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadFromString parses content in the given format. FormatAuto means TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

func readFile(filePath string, format Format) (map[string]interface{}, error) {
	const op = "config.readFile"

	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation(op).
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	return data, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

func applyDefaults(data, defaults map[string]interface{}) {
	for key, value := range defaults {
		if lookup(data, key) == nil {
			setPath(data, key, value)
		}
	}
}

// FilePath returns the file the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// GetString returns key as a string. Non-string values are formatted with %v.
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, ok := c.resolve(key)
	if !ok {
		return first(defaultValue)
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns key as an int, or the default if it is missing or not numeric
func (c *Config) GetInt(key string, defaultValue ...int) int {
	value, ok := c.resolve(key)
	if !ok {
		return first(defaultValue)
	}
	if n, ok := toInt(value); ok {
		return n
	}
	return first(defaultValue)
}

// GetBool returns key as a bool, or the default if it is missing or not boolean
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	value, ok := c.resolve(key)
	if !ok {
		return first(defaultValue)
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return first(defaultValue)
}

// GetStringSlice returns key as a string slice. An environment override is
// split on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	value, ok := c.resolve(key)
	if !ok {
		return first(defaultValue)
	}

	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return first(defaultValue)
}

// Has reports whether key is set in the data or the environment
func (c *Config) Has(key string) bool {
	_, ok := c.resolve(key)
	return ok
}

// Set stores value under the dotted key, creating intermediate tables
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setPath(c.data, key, value)
}

// GetAll returns a deep copy of the loaded data without environment overrides
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// EnvKey returns the environment variable that overrides key
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// resolve looks up key, preferring a non-empty environment override when
// an env prefix is configured.
func (c *Config) resolve(key string) (interface{}, bool) {
	if c.envPrefix != "" {
		if v := os.Getenv(c.EnvKey(key)); v != "" {
			return v, true
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	value := lookup(c.data, key)
	return value, value != nil
}

func lookup(data map[string]interface{}, key string) interface{} {
	current := data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func setPath(data map[string]interface{}, key string, value interface{}) {
	current := data
	keys := strings.Split(key, ".")
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

func first[T any](values []T) T {
	var zero T
	if len(values) > 0 {
		return values[0]
	}
	return zero
}
