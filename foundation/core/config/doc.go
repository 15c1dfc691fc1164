// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for config.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Rewritten for the textkit CLI settings

/*
Package config loads textkit settings from TOML or YAML files.

Values are addressed with dotted keys ("split.delimiter"). With an env prefix, every getter
consults the environment first: with the prefix "TEXTKIT" the key
"split.max_tokens" is overridden by TEXTKIT_SPLIT_MAX_TOKENS. Defaults are
given as a flat map of dotted keys and fill in whatever the file leaves out.

Loading:

	cfg, err := config.LoadWithOptions("textkit.toml", config.LoadOptions{
		EnvPrefix: "TEXTKIT",
		Defaults: map[string]interface{}{
			"split.delimiter":  " ",
			"split.max_tokens": 0,
		},
	})

	delim := cfg.GetString("split.delimiter")
	max := cfg.GetInt("split.max_tokens", -1)

Discovery searches the working directory and the user configuration
directory and falls back to an empty Config when nothing is found:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions("textkit"))

Validation reports every violation at once:

	result := cfg.Validate(config.ValidationRules{
		"output.format":    {OneOf: []string{"plain", "json", "table"}},
		"split.max_tokens": {Type: "int", Min: config.IntPtr(-1)},
	})
	if err := result.Err(); err != nil {
		return err
	}

Hot reload is driven by fsnotify:

	cfg.OnChange(func(old, cur *config.Config) {
		logger.Info("config reloaded")
	})
	if err := cfg.Watch(); err != nil {
		return err
	}
	defer cfg.Stop()

All errors are *mdwerror.Error values. A missing file carries CodeNotFound,
unparseable content CodeInvalidFormat and failed validation
CodeValidationFailed.
*/
package config
