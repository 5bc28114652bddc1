// Package ui renders the application state as a single-screen Bubble Tea
// program and translates key presses into app commands.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoterm/internal/app"
	"github.com/idilsaglam/todoterm/internal/model"
)

const dateLayout = "2006-01-02"

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
	modeFrom
	modeTo
	modeConfirm
)

// initMsg kicks off the first load once the program is running.
type initMsg struct{}

// appMsg carries an effect's completion command back into Dispatch.
type appMsg struct{ cmd app.Command }

type Model struct {
	app    *app.App
	userID int

	snap   app.Snapshot
	mode   mode
	ti     textinput.Model
	spin   spinner.Model
	cursor int

	// delete confirmation target
	pendingID    int
	pendingTitle string
	// from-date captured while prompting for the to-date
	pendingFrom time.Time

	status    string
	statusErr bool

	width, height int
}

func NewModel(a *app.App, userID int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return Model{
		app:    a,
		userID: userID,
		snap:   a.Snapshot(),
		ti:     ti,
		spin:   sp,
	}
}

// Run starts the Bubble Tea program in the alt screen.
func Run(a *app.App, userID int, logger *log.Logger) error {
	logger.Debug("starting ui", "user", userID)
	p := tea.NewProgram(NewModel(a, userID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, func() tea.Msg { return initMsg{} })
}

// dispatch feeds a command to the app core, refreshes the snapshot, and
// schedules the returned effect (if any) as a tea.Cmd.
func (m *Model) dispatch(c app.Command) tea.Cmd {
	eff, err := m.app.Dispatch(c)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
	}
	m.snap = m.app.Snapshot()
	m.clampCursor()
	if eff == nil {
		return nil
	}
	return func() tea.Msg { return appMsg{cmd: eff(context.Background())} }
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Visible) {
		m.cursor = len(m.snap.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		return m, m.dispatch(app.CmdLoad{})

	case appMsg:
		return m, m.dispatch(msg.cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd, modeSearch, modeFrom, modeTo:
		return m.handleInputKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		if m.status != "" && msg.String() == "esc" {
			m.status = ""
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.snap.Visible)-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		return m, m.dispatch(app.CmdPage{Page: m.snap.Page - 1})

	case "right", "l":
		return m, m.dispatch(app.CmdPage{Page: m.snap.Page + 1})

	case " ":
		if t, ok := m.selected(); ok {
			return m, m.dispatch(app.CmdToggle{ID: t.ID})
		}
		return m, nil

	case "d":
		if t, ok := m.selected(); ok {
			m.mode = modeConfirm
			m.pendingID = t.ID
			m.pendingTitle = t.Title
		}
		return m, nil

	case "a":
		m.enterInput(modeAdd, "New todo title...", "")
		return m, nil

	case "/":
		m.enterInput(modeSearch, "Search titles...", m.snap.Spec.Search)
		return m, nil

	case "f":
		from := ""
		if !m.snap.Spec.From.IsZero() {
			from = m.snap.Spec.From.Format(dateLayout)
		}
		m.enterInput(modeFrom, "From date (YYYY-MM-DD, blank for open)...", from)
		return m, nil

	case "c":
		return m, m.dispatch(app.CmdClearFilters{})

	case "r":
		return m, m.dispatch(app.CmdLoad{})
	}
	return m, nil
}

func (m *Model) enterInput(mo mode, placeholder, value string) {
	m.mode = mo
	m.ti.Placeholder = placeholder
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Focus()
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveInput()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.ti.Value())
		switch m.mode {
		case modeAdd:
			if value == "" {
				m.status = "Title cannot be empty"
				m.statusErr = true
				return m, nil
			}
			m.leaveInput()
			return m, m.dispatch(app.CmdAdd{Title: value, UserID: m.userID})

		case modeSearch:
			m.leaveInput()
			return m, m.dispatch(app.CmdFilter{
				Search: value,
				From:   m.snap.Spec.From,
				To:     m.snap.Spec.To,
			})

		case modeFrom:
			from, err := parseDate(value)
			if err != nil {
				m.status = err.Error()
				m.statusErr = true
				return m, nil
			}
			m.pendingFrom = from
			to := ""
			if !m.snap.Spec.To.IsZero() {
				to = m.snap.Spec.To.Format(dateLayout)
			}
			m.enterInput(modeTo, "To date (YYYY-MM-DD, blank for open)...", to)
			return m, nil

		case modeTo:
			to, err := parseDate(value)
			if err != nil {
				m.status = err.Error()
				m.statusErr = true
				return m, nil
			}
			m.leaveInput()
			return m, m.dispatch(app.CmdFilter{
				Search: m.snap.Spec.Search,
				From:   m.pendingFrom,
				To:     to,
			})
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeList
		return m, m.dispatch(app.CmdDelete{ID: m.pendingID, Confirmed: true})
	case "n", "N", "esc":
		m.mode = modeList
		return m, m.dispatch(app.CmdDelete{ID: m.pendingID, Confirmed: false})
	}
	return m, nil
}

func (m Model) selected() (model.Todo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Visible) {
		return model.Todo{}, false
	}
	return m.snap.Visible[m.cursor], true
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}
