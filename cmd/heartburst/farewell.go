package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var farewellStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#ff3366")).
	Foreground(lipgloss.Color("#ffd700")).
	Bold(true).
	Padding(1, 4).
	Align(lipgloss.Center)

// farewell renders the closing lines as a card printed once the screen is released
func farewell(lines []string) string {
	body := strings.Join(append([]string{"♥"}, lines...), "\n")
	return farewellStyle.Render(body)
}

func printFarewell(w io.Writer, lines []string) {
	io.WriteString(w, farewell(lines)+"\n")
}
