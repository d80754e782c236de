// Package report filters draft picks by position and renders the rookie pick
// tracker report.
//
// Qualifying picks are numbered against a fixed slotting scheme: for the i-th
// qualifying pick (0-indexed), round = i/teams+1 and slot = i%teams+1,
// rendered as "round.slot" with the slot zero-padded to two digits. A hard cap
// bounds the report; picks beyond it are silently dropped. Pick order is the
// API's draft-sequence order and is never re-sorted here.
package report
