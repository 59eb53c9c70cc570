package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/service"
	"github.com/daystar-app/daystar-client/models"
)

// HabitsModel is the main signed-in screen: one row per habit with its
// current streak, plus hotkeys for check-in, editing, history, profile,
// and logout. The list always reflects the service cache, which in turn
// mirrors the last server response.
type HabitsModel struct {
	ctx     context.Context
	session service.SessionManager
	habits  service.HabitService

	rows       []models.Habit
	idx        int
	loading    bool
	checkingIn bool
	status     string
	errMsg     string
}

func NewHabitsModel(ctx context.Context, session service.SessionManager, habits service.HabitService) *HabitsModel {
	return &HabitsModel{
		ctx:     ctx,
		session: session,
		habits:  habits,
	}
}

// Init implements [tea.Model]. Kicks off a fresh list load so the page
// never shows stale rows on entry.
func (m *HabitsModel) Init() tea.Cmd {
	m.loading = true
	m.checkingIn = false
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *HabitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case habitsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if adapter.IsAuthFailure(msg.err) {
				return m, navigateSignedOut()
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.rows = msg.habits
		if m.idx >= len(m.rows) {
			m.idx = max(0, len(m.rows)-1)
		}
		return m, nil

	case checkInDoneMsg:
		m.checkingIn = false
		if msg.err != nil {
			if adapter.IsAuthFailure(msg.err) {
				return m, navigateSignedOut()
			}
			if msg.duplicate {
				m.status = msg.err.Error()
				return m, tea.Batch(m.cmdLoad(), clearStatusAfter())
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Checked in!"
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case loggedOutMsg:
		return m, func() tea.Msg { return NavigateTo{Page: "welcome"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.checkIn):
		// One check-in at a time; the key re-arms on checkInDoneMsg.
		if m.checkingIn {
			return m, nil
		}
		if h, ok := m.selected(); ok {
			m.errMsg = ""
			m.checkingIn = true
			return m, m.cmdCheckIn(h.ID)
		}
	case key.Matches(keyMsg, keys.newItem):
		return m, func() tea.Msg { return NavigateTo{Page: "habit_form", Payload: editHabitMsg{}} }
	case key.Matches(keyMsg, keys.edit):
		if h, ok := m.selected(); ok {
			return m, func() tea.Msg { return NavigateTo{Page: "habit_form", Payload: editHabitMsg{habit: &h}} }
		}
	case key.Matches(keyMsg, keys.history):
		if h, ok := m.selected(); ok {
			return m, func() tea.Msg { return NavigateTo{Page: "history", Payload: showHistoryMsg{habit: h}} }
		}
	case key.Matches(keyMsg, keys.profile):
		return m, func() tea.Msg { return NavigateTo{Page: "profile"} }
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *HabitsModel) View() string {
	var b strings.Builder

	if snap := m.session.Snapshot(); snap.User != nil {
		b.WriteString(helpStyle.Render("Signed in as " + snap.User.Email))
		b.WriteString("\n\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.rows) == 0:
		b.WriteString("Loading habits...\n")
	case len(m.rows) == 0:
		b.WriteString("No habits yet. Press n to create your first one.\n")
	default:
		for i, h := range m.rows {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			icon := h.Icon
			if icon == "" {
				icon = "•"
			}
			b.WriteString(fmt.Sprintf("%s %s %-30s %s\n",
				cursor, icon, fitText(h.Title, 30), streakStyle.Render(formatStreak(h.Streak))))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("HABITS", strings.TrimRight(b.String(), "\n"),
		"c: check in │ n: new │ e: edit │ h: history │ p: profile │ r: refresh │ l: log out")
}

func formatStreak(streak int) string {
	if streak == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", streak)
}

func (m *HabitsModel) selected() (models.Habit, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return models.Habit{}, false
	}
	return m.rows[m.idx], true
}

func (m *HabitsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	habits := m.habits

	return func() tea.Msg {
		rows, err := habits.ListHabits(ctx)
		return habitsLoadedMsg{habits: rows, err: err}
	}
}

func (m *HabitsModel) cmdCheckIn(habitID int64) tea.Cmd {
	ctx := m.ctx
	habits := m.habits

	return func() tea.Msg {
		err := habits.CheckIn(ctx, habitID)
		return checkInDoneMsg{
			duplicate: errors.Is(err, service.ErrAlreadyCheckedIn),
			err:       err,
		}
	}
}

func (m *HabitsModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		_ = session.Logout(ctx)
		return loggedOutMsg{}
	}
}

func navigateSignedOut() tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: "welcome", Payload: SessionExpiredNotice{}}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
