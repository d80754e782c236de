// Package playercache maintains the on-disk snapshot of Sleeper's full player
// directory.
//
// The directory dump is several megabytes and changes slowly, so a snapshot
// younger than the configured TTL (24 hours by default, gated on file mtime)
// is served without touching the network. A corrupt snapshot is a cache miss,
// never a fatal error. When a refresh fetch fails, a stale-but-parseable
// snapshot is preferred over an empty directory; only when nothing usable
// exists does the load degrade to an empty map so the run can still complete.
package playercache
