package dashboard

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/marcus/remind/internal/dateparse"
	"github.com/marcus/remind/internal/models"
)

var errDescriptionRequired = errors.New("description is required")

// FormState holds the state for the add-reminder form
type FormState struct {
	Form *huh.Form

	// now anchors due-time parsing so validation and submission agree.
	now time.Time

	// Bound form values
	Description string
	Due         string
	Notes       string
}

// NewFormState creates the form for adding a reminder.
func NewFormState(now time.Time) *FormState {
	fs := &FormState{now: now}

	fs.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reminder").
				Value(&fs.Description).
				Placeholder("What should I remind you about?").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errDescriptionRequired
					}
					return nil
				}),
			huh.NewInput().
				Title("Due").
				Value(&fs.Due).
				Placeholder("+2h, tomorrow 9am, 2026-09-14 10:30").
				Validate(func(s string) error {
					_, err := dateparse.ParseFrom(s, fs.now)
					return err
				}),
			huh.NewText().
				Title("Notes").
				Value(&fs.Notes).
				Placeholder("Optional notes (markdown)...").
				Lines(3),
		).Title("New Reminder"),
	)
	fs.Form.WithTheme(huh.ThemeDracula())
	return fs
}

// ToReminder converts the submitted form into a reminder.
func (fs *FormState) ToReminder() (*models.Reminder, error) {
	due, err := dateparse.ParseFrom(fs.Due, fs.now)
	if err != nil {
		return nil, err
	}
	return &models.Reminder{
		Description: strings.TrimSpace(fs.Description),
		Notes:       strings.TrimSpace(fs.Notes),
		DueAt:       due,
	}, nil
}
