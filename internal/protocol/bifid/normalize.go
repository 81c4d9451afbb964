package bifid

// normalize keeps ASCII letters, uppercased. With foldJ, J becomes I.
func normalize(s string, foldJ bool) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r < 'A' || r > 'Z' {
			continue
		}
		if foldJ && r == 'J' {
			r = 'I'
		}
		out = append(out, r)
	}
	return out
}
