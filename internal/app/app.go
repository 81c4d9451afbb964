package app

import (
	"errors"
	"fmt"
	"strings"

	"bifid/internal/domain"
)

// ErrBadPadding is returned when the padding is not a single letter of the square alphabet.
var ErrBadPadding = errors.New("padding must be a single letter of " + domain.Alphabet)

// parsePadding uppercases p and checks it names one alphabet letter.
func parsePadding(p string) (rune, error) {
	r := []rune(strings.ToUpper(p))
	if len(r) != 1 || !strings.ContainsRune(domain.Alphabet, r[0]) {
		return 0, fmt.Errorf("%w: %q", ErrBadPadding, p)
	}
	return r[0], nil
}
