// Package cipher holds the session's key square and runs Bifid operations on it.
//
// The square is built once from the keyword and never changes, so a Service
// may be shared freely. Logs carry lengths and the square fingerprint only,
// never keywords or message text.
package cipher
