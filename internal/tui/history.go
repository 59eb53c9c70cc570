package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/service"
	"github.com/daystar-app/daystar-client/models"
)

// HistoryModel shows the check-in history of one habit, newest first as
// delivered by the server.
type HistoryModel struct {
	ctx    context.Context
	habits service.HabitService

	habit   models.Habit
	rows    []models.CheckIn
	loading bool
	errMsg  string
}

func NewHistoryModel(ctx context.Context, habits service.HabitService) *HistoryModel {
	return &HistoryModel{
		ctx:    ctx,
		habits: habits,
	}
}

func (m *HistoryModel) Init() tea.Cmd {
	return nil
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showHistoryMsg:
		m.habit = msg.habit
		m.rows = nil
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad(msg.habit.ID)

	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if adapter.IsAuthFailure(msg.err) {
				return m, navigateSignedOut()
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.rows = msg.checkIns
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return m, func() tea.Msg { return NavigateTo{Page: "habits"} }
	}

	return m, nil
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading history...\n")
	case len(m.rows) == 0:
		b.WriteString("No check-ins yet.\n")
	default:
		for _, c := range m.rows {
			b.WriteString("• ")
			b.WriteString(c.CheckInDate)
			if c.ImageURL != "" {
				b.WriteString("  📷")
			}
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("HISTORY: %s", fitText(m.habit.Title, 32))
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m *HistoryModel) cmdLoad(habitID int64) tea.Cmd {
	ctx := m.ctx
	habits := m.habits
	habit := m.habit

	return func() tea.Msg {
		checkIns, err := habits.ListCheckIns(ctx, habitID)
		return historyLoadedMsg{habit: habit, checkIns: checkIns, err: err}
	}
}
