// Package config loads roster's TOML configuration.
//
// # Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path, when given (the --config flag)
//  2. ~/.config/roster/config.toml
//  3. Built-in defaults when the file does not exist
//
// A missing file is not an error. Blank values fall back to their defaults.
// Unknown keys are ignored.
//
// # Format
//
//	source_url = "https://jsonplaceholder.typicode.com/users"
//	request_timeout = "0s"   # Go duration; 0 leaves the request unbounded
//	log_file = "~/.local/state/roster/roster.log"
//	log_level = "info"       # debug, info, warn, error
//
// Paths starting with ~ are expanded to the home directory and made absolute.
//
// # Errors
//
// Load fails on unreadable files, invalid TOML and invalid or negative
// durations. Those errors carry an "open config", "read config" or
// "parse config" prefix.
package config
