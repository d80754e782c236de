// Package textutil provides text helpers for display names and filenames.
//
// League display names come straight from the Sleeper API and end up in report
// titles and log filenames, so the package covers both directions: making a
// name safe to use as a path segment, and making a raw fallback presentable.
package textutil
