// Package logging builds the slog loggers used across picktrack.
//
// It provides level/format parsing, thin attribute wrappers so call sites do
// not import log/slog directly, and component loggers that namespace every
// package's output with a component attribute.
package logging
