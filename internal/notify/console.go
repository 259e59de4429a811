package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var consoleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

// Console writes notifications to a terminal instead of the desktop surface.
// Used by `watch --console` and as the fallback when desktop notifications
// are disabled in config.
type Console struct {
	W io.Writer
}

// NewConsole returns a Console writing to stdout.
func NewConsole() *Console {
	return &Console{W: os.Stdout}
}

// Notify implements Notifier.
func (c *Console) Notify(title, body string) error {
	_, err := fmt.Fprintf(c.W, "%s %s\n", consoleStyle.Render(title), body)
	return err
}
