// Package logging assembles structured slog loggers for the adlib CLI.
//
// It owns the console and JSON handlers, parses levels, fans output to stdout
// and an optional log file, and stamps every record with the invocation's
// session id. Terminals get colourised output through tint; files and pipes get
// the plain key=value console format. A no-op logger is provided for tests and
// wiring code that has nothing to report to.
package logging
