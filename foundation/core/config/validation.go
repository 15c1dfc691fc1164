// File: validation.go
// Title: Configuration Validation Implementation
// Description: Rule-based validation of configuration values covering
//              required keys, types, numeric bounds and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-19 v0.2.0: Added OneOf, errors are *mdwerror.Error, dropped struct binding

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

// ValidationRule defines validation criteria for one key
type ValidationRule struct {
	Required bool     // The key must be present
	Type     string   // "string", "int", "bool" or "[]string"
	Min      *int     // Lower bound for int values
	Max      *int     // Upper bound for int values
	OneOf    []string // Allowed values for string keys, compared case-insensitively
}

// ValidationRules maps dotted keys to their rules
type ValidationRules map[string]ValidationRule

// ValidationResult collects every violation found
type ValidationResult struct {
	Valid  bool
	Errors []error
}

// Err returns nil for a valid result, otherwise a CodeValidationFailed error
// listing every violation.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		msgs[i] = err.Error()
	}
	return mdwerror.New("invalid configuration: "+strings.Join(msgs, "; ")).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("violations", len(r.Errors))
}

// IntPtr is a helper for ValidationRule bounds
func IntPtr(n int) *int {
	return &n
}

// Validate checks the configuration, including environment overrides,
// against rules. Keys are checked in sorted order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value, ok := c.resolve(key)
	if !ok {
		if rule.Required {
			return fieldError(key, mdwerror.CodeMissingConfig, "required key is missing")
		}
		return nil
	}

	switch rule.Type {
	case "", "string":
		s := fmt.Sprintf("%v", value)
		if len(rule.OneOf) > 0 && !containsFold(rule.OneOf, s) {
			return errors.ConfigInvalidValue(key, s, "one of "+strings.Join(rule.OneOf, ", "))
		}
	case "int":
		n, ok := toInt(value)
		if !ok {
			return errors.ConfigInvalidValue(key, value, "integer")
		}
		if rule.Min != nil && n < *rule.Min {
			return fieldError(key, mdwerror.CodeValueOutOfRange, fmt.Sprintf("value %d is below %d", n, *rule.Min))
		}
		if rule.Max != nil && n > *rule.Max {
			return fieldError(key, mdwerror.CodeValueOutOfRange, fmt.Sprintf("value %d is above %d", n, *rule.Max))
		}
	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return errors.ConfigInvalidValue(key, v, "boolean")
			}
		default:
			return errors.ConfigInvalidValue(key, v, "boolean")
		}
	case "[]string":
		switch value.(type) {
		case []interface{}, []string, string:
		default:
			return errors.ConfigInvalidValue(key, value, "list of strings")
		}
	default:
		return fieldError(key, mdwerror.CodeInternal, "unknown rule type "+rule.Type)
	}
	return nil
}

func fieldError(key string, code mdwerror.Code, msg string) *mdwerror.Error {
	return mdwerror.New(key+": "+msg).
		WithCode(code).
		WithOperation("config.Validate").
		WithDetail("key", key)
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
