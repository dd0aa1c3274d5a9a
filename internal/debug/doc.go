// Package debug writes optional diagnostics to a file.
//
// Logging is enabled by Init or by pointing the TUI_DEBUG environment
// variable at a file path. Until then every call is a no-op, so the
// terminal the app draws on is never written to.
package debug
