// Package download implements the installer transfer: a single-attempt
// streaming HTTP GET copied to disk in fixed-size chunks, with throttled
// progress callbacks, cooperative cancellation, and partial-file cleanup
// on any failure.
package download
