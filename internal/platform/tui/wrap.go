package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks text into lines no wider than width display cells,
// splitting on word boundaries. Words wider than the limit get a line of
// their own.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var (
		b         strings.Builder
		lineWidth int
	)
	for i, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		switch {
		case i == 0:
			b.WriteString(word)
			lineWidth = w
		case lineWidth+1+w > width:
			b.WriteByte('\n')
			b.WriteString(word)
			lineWidth = w
		default:
			b.WriteByte(' ')
			b.WriteString(word)
			lineWidth += 1 + w
		}
	}
	return b.String()
}
