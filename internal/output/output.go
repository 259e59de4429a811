// Package output provides styled terminal output helpers (success, error,
// warning, reminder formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/remind/internal/models"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Error codes for structured JSON output
const (
	ErrCodeNotFound     = "not_found"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeCorruptStore = "corrupt_store"
	ErrCodeIOError      = "io_error"
)

// JSONError outputs an error as JSON
func JSONError(code, message string) {
	fmt.Printf(`{"error":{"code":"%s","message":"%s"}}`, code, message)
	fmt.Println()
}

// StatusBadge returns a colored marker for a reminder's delivery state.
func StatusBadge(r *models.Reminder, now time.Time) string {
	switch {
	case r.Notified:
		return doneStyle.Render("✓")
	case r.IsDue(now):
		return overdueStyle.Render("!")
	default:
		return pendingStyle.Render("○")
	}
}

// FormatDue renders a due time relative to now: "in 2h", "3d overdue",
// "due now". Far-off times fall back to the date.
func FormatDue(due, now time.Time) string {
	diff := due.Sub(now)
	if diff < 0 {
		return relative(-diff, "%s overdue", due)
	}
	if diff < time.Minute {
		return "due now"
	}
	return relative(diff, "in %s", due)
}

func relative(d time.Duration, format string, t time.Time) string {
	var span string
	switch {
	case d < time.Minute:
		span = "under a minute"
	case d < time.Hour:
		span = fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		span = fmt.Sprintf("%dh", int(d.Hours()))
	case d < 14*24*time.Hour:
		span = fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf(format, span)
}

// FormatReminderShort formats a reminder as a single list row.
func FormatReminderShort(r *models.Reminder, now time.Time) string {
	parts := []string{
		StatusBadge(r, now),
		titleStyle.Render(r.ID),
		r.Description,
	}
	due := FormatDue(r.DueAt, now)
	if r.Notified {
		due = "notified"
	} else if r.IsDue(now) {
		due = overdueStyle.Render(due)
	}
	parts = append(parts, subtleStyle.Render(due))
	return strings.Join(parts, "  ")
}

// FormatReminderLong formats a reminder with full detail. Notes are appended
// separately by callers that render markdown.
func FormatReminderLong(r *models.Reminder, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s: %s", r.ID, r.Description)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Due: %s (%s)\n", r.DueAt.Local().Format("2006-01-02 15:04"), FormatDue(r.DueAt, now)))

	state := "pending"
	if r.Notified {
		state = "notified"
	} else if r.IsDue(now) {
		state = "overdue"
	}
	sb.WriteString(fmt.Sprintf("Status: %s\n", state))
	sb.WriteString(fmt.Sprintf("Created: %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04")))

	return sb.String()
}
