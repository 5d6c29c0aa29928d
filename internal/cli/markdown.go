package cli

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders recommendation markdown for terminal display,
// word-wrapped to width. Falls back to the raw text if rendering fails so
// a styling problem never hides the advice.
func renderMarkdown(content string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
