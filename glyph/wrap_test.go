package glyph

import (
	"reflect"
	"strings"
	"testing"
)

// monoMeasure treats every rune as 10px wide
func monoMeasure(s string) float64 {
	return float64(len([]rune(s))) * 10
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"empty", "", 100, nil},
		{"whitespace only", "   \t ", 100, nil},
		{"short fits one line", "HOLA MILY", 1000, []string{"HOLA MILY"}},
		{"greedy split", "AAA BBB CCC DDD", 80, []string{"AAA BBB", "CCC DDD"}},
		{"exact budget wraps", "AAAA BBBB", 90, []string{"AAAA", "BBBB"}},
		{"long word kept", "A SUPERCALIFRAGILISTIC B", 50, []string{"A", "SUPERCALIFRAGILISTIC", "B"}},
		{"collapses runs of spaces", "A   B", 1000, []string{"A B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.maxWidth, monoMeasure)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrapRespectsBudget(t *testing.T) {
	text := "NUNCA LO OLVIDES MILY ANIMO SE TE APRECIA MUCHO TE QUIERO MILY EXTRAORDINARIAMENTE"
	const budget = 120
	lines := Wrap(text, budget, monoMeasure)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
	for _, line := range lines {
		if monoMeasure(line) >= budget && strings.Contains(line, " ") {
			t.Errorf("line %q exceeds budget with more than one word", line)
		}
	}
	if got := strings.Join(lines, " "); got != text {
		t.Errorf("words lost or reordered: %q", got)
	}
}
