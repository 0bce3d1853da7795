// Package config loads, normalizes, and validates the homedia TOML
// configuration.
//
// Configuration is optional: every field has a default that reproduces the
// built-in encode heuristics, so the tool runs without a config file. Load
// resolves ~/.config/homedia/config.toml, then ./homedia.toml, then defaults.
package config
