package bifid

import (
	"strconv"
	"strings"

	"bifid/internal/domain"
)

// Render returns the square as a grid labelled with 1-indexed row and column
// numbers, one row per line.
func Render(sq Square) string {
	var b strings.Builder
	b.WriteString("Polybius Square:\n ")
	for c := 1; c <= domain.SquareSize; c++ {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte('\n')
	for i := 1; i <= domain.SquareSize; i++ {
		b.WriteString(strconv.Itoa(i))
		for _, r := range sq.Row(i) {
			b.WriteByte(' ')
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
