// Package history records completed scans in a SQLite database so past runs
// can be reviewed with the history command.
//
// History is strictly best-effort: a recording failure is logged and never
// fails the scan that produced it. A nil *Store is valid and turns every
// operation into a no-op, which is how the feature is disabled.
package history
