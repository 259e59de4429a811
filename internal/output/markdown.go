package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	minWidth      = 20
)

// TerminalWidth returns the current terminal width, consulting COLUMNS when
// stdout is not a terminal, and falling back to 80 columns.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return fallbackWidth
}

// RenderMarkdown renders reminder notes as markdown, word-wrapped to the
// given width. Width 0 means use the terminal width.
func RenderMarkdown(text string, width int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if width <= 0 {
		width = TerminalWidth()
	}
	if width < minWidth {
		width = minWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n"), nil
}
