package bifid_test

import (
	"strings"
	"testing"

	"bifid/internal/domain"
	"bifid/internal/protocol/bifid"
)

func TestNewSquare_ContainsEveryLetterOnce(t *testing.T) {
	keys := []string{"", "KEYWORD", "jjjiii", "Playfair Example!", "1234 !?", "ZYXWVUTSRQPONMLKIHGFEDCBA"}
	for _, key := range keys {
		letters := bifid.NewSquare(key).Letters()
		if len(letters) != len(domain.Alphabet) {
			t.Fatalf("key %q: want %d letters, got %d (%q)", key, len(domain.Alphabet), len(letters), letters)
		}
		for _, r := range domain.Alphabet {
			if n := strings.Count(letters, string(r)); n != 1 {
				t.Fatalf("key %q: letter %c appears %d times in %q", key, r, n, letters)
			}
		}
		if strings.ContainsRune(letters, 'J') {
			t.Fatalf("key %q: square contains J: %q", key, letters)
		}
	}
}

func TestNewSquare_KeywordFirstRow(t *testing.T) {
	sq := bifid.NewSquare("KEYWORD")
	if got := string(sq.Row(1)); got != "KEYWO" {
		t.Fatalf("first row: got %q, want %q", got, "KEYWO")
	}
	if got, want := sq.Letters(), "KEYWORDABCFGHILMNPQSTUVXZ"; got != want {
		t.Fatalf("letters: got %q, want %q", got, want)
	}
}

func TestNewSquare_DefaultIsAlphabet(t *testing.T) {
	if got := bifid.NewSquare("").Letters(); got != domain.Alphabet {
		t.Fatalf("got %q, want %q", got, domain.Alphabet)
	}
}

func TestNewSquare_NonAlphabeticKeyIsDefault(t *testing.T) {
	if got := bifid.NewSquare("12 - 34!").Letters(); got != domain.Alphabet {
		t.Fatalf("got %q, want %q", got, domain.Alphabet)
	}
}

func TestNewSquare_KeyNormalization(t *testing.T) {
	// j folds into i before duplicates are removed.
	if got, want := bifid.NewSquare("j-i jam").Letters()[:3], "IAM"; got != want {
		t.Fatalf("got prefix %q, want %q", got, want)
	}
}

func TestSquare_LocateAt(t *testing.T) {
	sq := bifid.NewSquare("")
	c, ok := sq.Locate('H')
	if !ok || c != (domain.Coordinate{Row: 2, Col: 3}) {
		t.Fatalf("Locate(H): got %v %v, want (2,3) true", c, ok)
	}
	if _, ok := sq.Locate('J'); ok {
		t.Fatal("Locate(J): want not found")
	}
	if r, ok := sq.At(domain.Coordinate{Row: 5, Col: 5}); !ok || r != 'Z' {
		t.Fatalf("At(5,5): got %q %v, want 'Z' true", r, ok)
	}
	if _, ok := sq.At(domain.Coordinate{Row: 0, Col: 6}); ok {
		t.Fatal("At(0,6): want out of range")
	}
	if sq.Row(6) != nil {
		t.Fatal("Row(6): want nil")
	}
}

func TestSquare_RowIsCopy(t *testing.T) {
	sq := bifid.NewSquare("")
	row := sq.Row(1)
	row[0] = 'Q'
	if got := string(sq.Row(1)); got != "ABCDE" {
		t.Fatalf("square mutated through Row: got %q", got)
	}
}

func TestRender(t *testing.T) {
	want := "Polybius Square:\n" +
		"  1 2 3 4 5\n" +
		"1 K E Y W O\n" +
		"2 R D A B C\n" +
		"3 F G H I L\n" +
		"4 M N P Q S\n" +
		"5 T U V X Z\n"
	if got := bifid.Render(bifid.NewSquare("KEYWORD")); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
