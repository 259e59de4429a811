// Package dashboard implements the interactive TUI: a live list of
// reminders with inline add/delete, refreshed by the same due-check pass
// the watch command runs.
package dashboard

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/marcus/remind/internal/checker"
	"github.com/marcus/remind/internal/models"
	"github.com/marcus/remind/internal/notify"
	"github.com/marcus/remind/internal/store"
)

// MinWidth is the minimum terminal width for proper display
const MinWidth = 40

// MinHeight is the minimum terminal height for proper display
const MinHeight = 10

// TickMsg triggers a due-check pass and data refresh
type TickMsg time.Time

// Model is the main Bubble Tea model for the dashboard.
//
// The Store has no internal locking, so every store access (pass, add,
// delete, snapshot) runs inside Update on the Bubble Tea event loop. Cmds
// issued by this model only carry timing and key messages, never store
// mutations, to keep the single-writer guarantee.
type Model struct {
	Store   *store.Store
	Checker *checker.Checker

	Width  int
	Height int

	Reminders    []models.Reminder
	Cursor       int
	ShowNotified bool

	FormOpen  bool
	FormState *FormState

	SearchOpen  bool
	SearchInput textinput.Model
	SearchQuery string

	ShowHelp    bool
	StatusMsg   string
	LastRefresh time.Time
	Err         error

	RefreshInterval time.Duration
}

// NewModel creates a dashboard model over an open store.
func NewModel(st *store.Store, n notify.Notifier, interval time.Duration) Model {
	c := checker.New(st, n)
	c.Logf = func(string, ...any) {}

	search := textinput.New()
	search.Placeholder = "filter..."
	search.CharLimit = 80

	if interval <= 0 {
		interval = checker.DefaultInterval
	}

	m := Model{
		Store:           st,
		Checker:         c,
		SearchInput:     search,
		RefreshInterval: interval,
	}
	m.Reminders = m.snapshot()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.scheduleTick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle TickMsg before any UI-mode interceptions to keep the poll chain
	// alive. Without this, opening the form (which intercepts all messages)
	// would swallow the TickMsg, preventing scheduleTick() from being called,
	// permanently breaking the periodic refresh cycle.
	if _, ok := msg.(TickMsg); ok {
		m.runPass()
		return m, m.scheduleTick()
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width = size.Width
		m.Height = size.Height
		return m, nil
	}

	// Form mode: forward all messages to the huh form first
	if m.FormOpen && m.FormState != nil && m.FormState.Form != nil {
		return m.handleFormUpdate(msg)
	}

	// Search mode: key messages handled here, everything else feeds the
	// textinput (cursor blink and friends)
	if m.SearchOpen {
		if key, isKey := msg.(tea.KeyMsg); isKey {
			switch key.String() {
			case "enter":
				m.SearchOpen = false
				m.SearchQuery = m.SearchInput.Value()
				m.clampCursor()
				return m, nil
			case "esc":
				m.SearchOpen = false
				m.SearchInput.SetValue("")
				m.SearchQuery = ""
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.SearchInput, cmd = m.SearchInput.Update(msg)
		return m, cmd
	}

	if key, isKey := msg.(tea.KeyMsg); isKey {
		return m.handleKey(key)
	}
	return m, nil
}

// handleKey processes key input in list mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.Cursor++
		m.clampCursor()
		return m, nil

	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case "a":
		m.FormState = NewFormState(time.Now())
		m.FormOpen = true
		return m, m.FormState.Form.Init()

	case "d", "x":
		m.deleteUnderCursor()
		return m, nil

	case "n":
		m.ShowNotified = !m.ShowNotified
		m.clampCursor()
		return m, nil

	case "/":
		m.SearchOpen = true
		m.SearchInput.Focus()
		return m, textinput.Blink

	case "r":
		m.runPass()
		return m, nil

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, isKey := msg.(tea.KeyMsg); isKey && key.String() == "esc" {
		m.FormOpen = false
		m.FormState = nil
		return m, nil
	}

	form, cmd := m.FormState.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.FormState.Form = f
	}

	switch m.FormState.Form.State {
	case huh.StateCompleted:
		fs := m.FormState
		m.FormOpen = false
		m.FormState = nil
		m.addFromForm(fs)
		return m, cmd
	case huh.StateAborted:
		m.FormOpen = false
		m.FormState = nil
		return m, nil
	}
	return m, cmd
}

// runPass executes a due-check pass on the update loop and reloads the list.
func (m *Model) runPass() {
	fired, err := m.Checker.Pass(time.Now())
	m.Err = err
	if err == nil && len(fired) > 0 {
		m.StatusMsg = pluralize(len(fired), "reminder fired", "reminders fired")
	}
	m.Reminders = m.snapshot()
	m.LastRefresh = time.Now()
	m.clampCursor()
}

// addFromForm converts the submitted form into a stored reminder.
func (m *Model) addFromForm(fs *FormState) {
	r, err := fs.ToReminder()
	if err != nil {
		m.Err = err
		return
	}
	if err := m.Store.Add(r); err != nil {
		m.Err = err
		return
	}
	m.Err = m.Store.Save()
	m.Reminders = m.snapshot()
	m.clampCursor()
}

// deleteUnderCursor removes the selected reminder and persists the store.
func (m *Model) deleteUnderCursor() {
	visible := m.Visible()
	if m.Cursor >= len(visible) {
		return
	}
	if err := m.Store.Remove(visible[m.Cursor].ID); err != nil {
		m.Err = err
		return
	}
	m.Err = m.Store.Save()
	m.Reminders = m.snapshot()
	m.clampCursor()
}

// Visible returns the reminders matching the current filters.
func (m Model) Visible() []models.Reminder {
	var out []models.Reminder
	q := strings.ToLower(m.SearchQuery)
	for _, r := range m.Reminders {
		if r.Notified && !m.ShowNotified {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Description), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (m *Model) clampCursor() {
	if n := len(m.Visible()); m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

// scheduleTick returns a command that sends a TickMsg after the refresh interval
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) snapshot() []models.Reminder {
	return m.Store.List(store.ListOptions{IncludeNotified: true, SortByDue: true})
}
