// Package tui provides the Bubble Tea game interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapHints breaks a hint line on spaces so it fits the given display
// width. Words wider than the width are emitted on their own line.
func wrapHints(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var out strings.Builder
	lineWidth := 0
	for i, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if i == 0 {
			out.WriteString(word)
			lineWidth = wordWidth
			continue
		}
		if lineWidth+1+wordWidth > width {
			out.WriteByte('\n')
			out.WriteString(word)
			lineWidth = wordWidth
			continue
		}
		out.WriteByte(' ')
		out.WriteString(word)
		lineWidth += 1 + wordWidth
	}
	return out.String()
}
