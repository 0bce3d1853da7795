// Package logging builds the slog loggers used across homedia.
//
// Two output formats are supported: a compact console format for interactive
// runs (timestamp, level, component, message, key=value attributes) and a JSON
// format for log collection. Attribute helpers keep call sites terse and let the
// rest of the codebase avoid importing log/slog directly for common cases.
package logging
