package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/remind/internal/models"
	"github.com/marcus/remind/internal/output"
)

const helpText = "a add  d delete  n toggle notified  / filter  r check now  ? help  q quit"

func (m Model) renderView() string {
	if m.Width > 0 && (m.Width < MinWidth || m.Height < MinHeight) {
		return subtleStyle.Render(fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight))
	}

	if m.FormOpen && m.FormState != nil {
		return m.FormState.Form.View()
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderList())
	if m.SearchOpen {
		sections = append(sections, "/"+m.SearchInput.View())
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("remind")
	info := fmt.Sprintf("%d pending", len(m.pending()))
	if m.SearchQuery != "" {
		info += fmt.Sprintf("  filter: %q", m.SearchQuery)
	}
	if !m.LastRefresh.IsZero() {
		info += "  checked " + m.LastRefresh.Format("15:04:05")
	}
	return title + "  " + subtleStyle.Render(info)
}

func (m Model) renderList() string {
	visible := m.Visible()
	if len(visible) == 0 {
		empty := "No reminders. Press a to add one."
		if m.SearchQuery != "" {
			empty = "Nothing matches the filter."
		}
		return panelStyle.Render(subtleStyle.Render(empty))
	}

	width := m.Width
	if width <= 0 {
		width = 80
	}

	now := time.Now()
	var rows []string
	for i, r := range visible {
		row := m.renderRow(&r, now)
		row = ansi.Truncate(row, width-4, "…")
		if i == m.Cursor {
			row = selectedStyle.Render("> ") + row
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderRow(r *models.Reminder, now time.Time) string {
	due := output.FormatDue(r.DueAt, now)
	switch {
	case r.Notified:
		return doneStyle.Render(r.Description) + "  " + subtleStyle.Render("notified")
	case r.IsDue(now):
		return r.Description + "  " + overdueStyle.Render(due)
	case r.DueAt.Sub(now) < time.Hour:
		return r.Description + "  " + dueSoonStyle.Render(due)
	default:
		return r.Description + "  " + subtleStyle.Render(due)
	}
}

func (m Model) renderFooter() string {
	if m.ShowHelp {
		return helpStyle.Render(helpText)
	}
	if m.Err != nil {
		return overdueStyle.Render("error: " + m.Err.Error())
	}
	if m.StatusMsg != "" {
		return statusStyle.Render(m.StatusMsg)
	}
	return helpStyle.Render("? for help")
}

func (m Model) pending() []models.Reminder {
	var out []models.Reminder
	for _, r := range m.Reminders {
		if !r.Notified {
			out = append(out, r)
		}
	}
	return out
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
