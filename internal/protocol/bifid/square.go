package bifid

import (
	"bifid/internal/domain"
)

// Square is a 5x5 key square holding a permutation of domain.Alphabet.
// The zero value is an empty square in which no letter can be located.
type Square struct {
	cells [domain.SquareSize][domain.SquareSize]rune
	index map[rune]domain.Coordinate
}

// NewSquare builds a key square from key.
//
// Key letters are uppercased, J is folded into I, and repeats are dropped
// keeping the first occurrence. The rest of the alphabet follows in order.
// An empty key, or one without letters, yields the plain alphabet.
func NewSquare(key string) Square {
	seen := make(map[rune]bool, len(domain.Alphabet))
	order := make([]rune, 0, len(domain.Alphabet))
	add := func(r rune) {
		if seen[r] {
			return
		}
		seen[r] = true
		order = append(order, r)
	}
	for _, r := range normalize(key, true) {
		add(r)
	}
	for _, r := range domain.Alphabet {
		add(r)
	}

	sq := Square{index: make(map[rune]domain.Coordinate, len(order))}
	for i, r := range order {
		row, col := i/domain.SquareSize, i%domain.SquareSize
		sq.cells[row][col] = r
		sq.index[r] = domain.Coordinate{Row: row + 1, Col: col + 1}
	}
	return sq
}

// Locate returns the coordinate of letter r.
func (s Square) Locate(r rune) (domain.Coordinate, bool) {
	c, ok := s.index[r]
	return c, ok
}

// At returns the letter at c.
func (s Square) At(c domain.Coordinate) (rune, bool) {
	if !c.Valid() {
		return 0, false
	}
	r := s.cells[c.Row-1][c.Col-1]
	return r, r != 0
}

// Row returns a copy of row i (1-indexed), or nil when i is out of range.
func (s Square) Row(i int) []rune {
	if i < 1 || i > domain.SquareSize {
		return nil
	}
	out := make([]rune, domain.SquareSize)
	copy(out, s.cells[i-1][:])
	return out
}

// Letters returns the 25 letters of the square read row-major.
func (s Square) Letters() string {
	out := make([]rune, 0, domain.SquareSize*domain.SquareSize)
	for _, row := range s.cells {
		out = append(out, row[:]...)
	}
	return string(out)
}

// String renders the square. See Render.
func (s Square) String() string { return Render(s) }
