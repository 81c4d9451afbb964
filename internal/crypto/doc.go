// Package crypto exposes the hashing helpers used by bifid.
//
// Contents
//
//   - Short key-square fingerprints for display/logging (FingerprintSquare)
//
// # Notes
//
// A fingerprint identifies a square layout without revealing the keyword that
// produced it. It makes no security claim about the cipher itself.
package crypto
