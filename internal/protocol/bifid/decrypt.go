package bifid

import (
	"strings"

	"bifid/internal/domain"
)

// Decrypt deciphers ciphertext with sq.
//
// Non-letters are dropped and letters uppercased. J is not folded: it never
// appears in a square and is skipped. Padding added by Encrypt is returned
// as part of the plaintext.
func Decrypt(sq Square, ciphertext string) string {
	digits := make([]int, 0, 2*len(ciphertext))
	for _, r := range normalize(ciphertext, false) {
		c, ok := sq.Locate(r)
		if !ok {
			continue
		}
		digits = append(digits, c.Row, c.Col)
	}

	mid := len(digits) / 2
	rows, cols := digits[:mid], digits[mid:]

	var b strings.Builder
	b.Grow(mid)
	for i := range rows {
		r, _ := sq.At(domain.Coordinate{Row: rows[i], Col: cols[i]})
		b.WriteRune(r)
	}
	return b.String()
}
