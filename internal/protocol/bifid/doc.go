// Package bifid implements the Bifid fractionating cipher over a 5x5 key square.
//
// # Overview
//
// Each letter is written as the (row, column) of its cell in the square. The
// row digits of the whole message are followed by its column digits, and the
// combined sequence is read back two digits at a time as new coordinates.
//
// # Flows
//
// Encrypt:
//  1. Strip non-letters, uppercase, fold J into I.
//  2. Pad odd-length input with one padding letter.
//  3. Collect rows then columns and re-pair them into ciphertext letters.
//
// Decrypt:
//  1. Strip non-letters and uppercase.
//  2. Flatten each letter into row, column.
//  3. Split the flat digits in half and pair row[i] with col[i].
//
// Decrypt never removes padding; a padded message comes back one letter longer.
//
// # Concurrency
//
// A Square is immutable once built and may be shared by any number of
// goroutines. Encrypt and Decrypt are pure.
package bifid
