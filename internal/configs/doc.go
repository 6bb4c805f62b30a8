// Package configs manages user-level defaults for gpg-checker.
//
// Defaults live in config.toml under the user's config directory
// (os.UserConfigDir), for example:
//
//	[scan]
//	workers = 4
//	recursive = true
//	exclude = ["**/.git/**", "**/node_modules/**"]
//
// A missing config file is normal and yields zero-value defaults.
// Command-line flags always override config values.
package configs
