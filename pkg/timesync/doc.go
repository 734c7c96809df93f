// Package timesync measures the offset between a remote reference clock and
// the local one, so TOTP codes stay valid on hosts with drifting clocks.
//
// Some credentials carry a time correction URL pointing at an endpoint that
// returns the server's current time. This package queries such endpoints and
// turns the response into a time.Duration that callers add to time.Now before
// deriving or validating codes.
//
// # Measurement
//
// A sample is one HTTP GET timed locally:
//
//	• the endpoint's reply body is read as a Unix epoch millisecond timestamp,
//	  with the HTTP Date header as a fallback
//	• the local moment matching the server stamp is estimated as the midpoint
//	  of the round trip
//	• the offset is server time minus that local estimate
//
// Network failures, timeouts, rate limiting, and 5xx responses are retried
// with Fibonacci backoff; malformed responses and other client errors fail
// immediately.
//
// # Usage
//
//	client := timesync.New(
//		timesync.WithTimeout(3*time.Second),
//		timesync.WithMaxRetries(3),
//	)
//
//	offset, err := client.Offset(ctx, key.TimeCorrectionURL())
//	if err != nil {
//		// fall back to the local clock
//		offset = 0
//	}
//
//	code, err := totp.GenerateCodeAt(key, time.Now().Add(offset))
//
// Hosts that configure through the environment can build the client from the
// env-tag aware Config (TIMESYNC_TIMEOUT, TIMESYNC_MAX_RETRIES,
// TIMESYNC_BACKOFF_BASE) via NewFromConfig; explicit options still win.
//
// # Error Handling
//
// Failures map to sentinel errors usable with errors.Is: ErrInvalidURL for
// endpoints that are not absolute http(s) URLs, ErrSyncFailed when the
// endpoint cannot be reached, ErrUnexpectedStatus for non-2xx replies, and
// ErrBadServerTime when the response carries no readable timestamp.
package timesync
