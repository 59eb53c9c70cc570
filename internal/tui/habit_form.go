package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/service"
	"github.com/daystar-app/daystar-client/models"
)

// HabitFormModel is a single form serving both habit creation and
// editing, switched by the [editHabitMsg] payload it is opened with.
type HabitFormModel struct {
	ctx    context.Context
	habits service.HabitService

	editing    *models.Habit
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewHabitFormModel(ctx context.Context, habits service.HabitService) *HabitFormModel {
	return &HabitFormModel{
		ctx:    ctx,
		habits: habits,
		inputs: newHabitInputs(),
	}
}

func newHabitInputs() []textinput.Model {
	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 100
	titleInput.Width = 40
	titleInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description (optional)"
	descriptionInput.CharLimit = 500
	descriptionInput.Width = 40

	iconInput := textinput.New()
	iconInput.Placeholder = "icon, e.g. 🏃 (optional)"
	iconInput.CharLimit = 16
	iconInput.Width = 40

	colourInput := textinput.New()
	colourInput.Placeholder = "colour, e.g. #4A90D9 (optional)"
	colourInput.CharLimit = 16
	colourInput.Width = 40

	return []textinput.Model{titleInput, descriptionInput, iconInput, colourInput}
}

func (m *HabitFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *HabitFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editHabitMsg:
		m.reset(msg.habit)
		return m, textinput.Blink

	case habitSavedMsg:
		m.submitting = false
		if msg.err != nil {
			if adapter.IsAuthFailure(msg.err) {
				return m, navigateSignedOut()
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "habits"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "habits"} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			fields := models.HabitFields{
				Title:       strings.TrimSpace(m.inputs[0].Value()),
				Description: strings.TrimSpace(m.inputs[1].Value()),
				Icon:        strings.TrimSpace(m.inputs[2].Value()),
				Colour:      strings.TrimSpace(m.inputs[3].Value()),
			}
			if fields.Title == "" {
				m.errMsg = "Title is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(fields)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *HabitFormModel) View() string {
	var b strings.Builder
	labels := []string{"Title      ", "Description", "Icon       ", "Colour     "}
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "NEW HABIT"
	if m.editing != nil {
		title = "EDIT HABIT"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

// reset reloads the form for a create (nil) or edit (non-nil) pass.
func (m *HabitFormModel) reset(habit *models.Habit) {
	m.editing = habit
	m.inputs = newHabitInputs()
	m.focus = 0
	m.submitting = false
	m.errMsg = ""

	if habit != nil {
		m.inputs[0].SetValue(habit.Title)
		m.inputs[1].SetValue(habit.Description)
		m.inputs[2].SetValue(habit.Icon)
		m.inputs[3].SetValue(habit.Colour)
	}
}

func (m *HabitFormModel) cmdSave(fields models.HabitFields) tea.Cmd {
	ctx := m.ctx
	habits := m.habits
	editing := m.editing

	return func() tea.Msg {
		if editing != nil {
			return habitSavedMsg{err: habits.UpdateHabit(ctx, editing.ID, fields)}
		}
		return habitSavedMsg{err: habits.CreateHabit(ctx, fields)}
	}
}

func (m *HabitFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *HabitFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
