// Package sleeper implements a typed client for the Sleeper fantasy football
// public read-only API.
//
// All endpoints are unauthenticated JSON-over-HTTPS GETs. The client performs
// no retries; a transport failure or non-200 status surfaces as an error and
// callers decide whether that is fatal to their run. Ordering contracts are
// the API's own: drafts arrive most-recent-first and picks arrive in draft
// sequence, and neither is re-sorted locally.
package sleeper
