// Package config loads, normalizes, and validates movefiles configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MOVEFILES_LOG_LEVEL. Command-line flags are applied on top of the loaded
// Config by the CLI; everything else reads settings through this package so
// paths arrive absolute and enum values arrive canonical.
package config
