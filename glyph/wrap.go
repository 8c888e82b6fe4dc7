package glyph

import "strings"

// Wrap greedily packs words into lines whose measured width stays under maxWidth
// A word wider than maxWidth is placed alone on its own line
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 4)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) < maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
