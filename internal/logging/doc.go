// Package logging assembles the structured slog loggers used by stlaunch.
//
// It owns the console and JSON handlers, level parsing, and output routing:
// console output goes to stderr so commands that print to stdout stay
// pipeable, and an optional log file always receives JSON. Every record
// carries the session_id of the invocation.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
