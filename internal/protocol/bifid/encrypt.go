package bifid

import (
	"strings"

	"bifid/internal/domain"
)

// DefaultPadding is appended to odd-length plaintext.
const DefaultPadding = 'X'

// Encrypt enciphers plaintext with sq.
//
// Non-letters are dropped, letters uppercased and J folded into I. Odd-length
// input gets padding appended as-is; a padding rune missing from the square is
// skipped like any other unknown letter, so it should be an uppercase letter
// of domain.Alphabet.
func Encrypt(sq Square, plaintext string, padding rune) string {
	letters := normalize(plaintext, true)
	if len(letters)%2 != 0 {
		letters = append(letters, padding)
	}

	rows := make([]int, 0, len(letters))
	cols := make([]int, 0, len(letters))
	for _, r := range letters {
		c, ok := sq.Locate(r)
		if !ok {
			continue
		}
		rows = append(rows, c.Row)
		cols = append(cols, c.Col)
	}

	combined := append(rows, cols...)
	var b strings.Builder
	b.Grow(len(combined) / 2)
	for i := 0; i+1 < len(combined); i += 2 {
		r, _ := sq.At(domain.Coordinate{Row: combined[i], Col: combined[i+1]})
		b.WriteRune(r)
	}
	return b.String()
}
