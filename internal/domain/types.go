package domain

import "fmt"

// Alphabet is the 25-letter working alphabet. J is folded into I.
const Alphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// SquareSize is the number of rows (and columns) in a key square.
const SquareSize = 5

// Coordinate identifies a cell of the key square. Row and Col are 1-indexed.
type Coordinate struct {
	Row int
	Col int
}

// Valid reports whether both components lie in [1, SquareSize].
func (c Coordinate) Valid() bool {
	return c.Row >= 1 && c.Row <= SquareSize && c.Col >= 1 && c.Col <= SquareSize
}

// String returns the coordinate as "(row,col)".
func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Fingerprint is a short identifier for a key square presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
