package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/service"
)

// ProfileModel lets the signed-in user change their display name and
// password. Email is shown but immutable.
type ProfileModel struct {
	ctx     context.Context
	session service.SessionManager

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewProfileModel(ctx context.Context, session service.SessionManager) *ProfileModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "new name (blank = keep)"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "new password (blank = keep)"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &ProfileModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{nameInput, passwordInput},
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(profileSavedMsg); ok {
		m.submitting = false
		if result.err != nil {
			if adapter.IsAuthFailure(result.err) {
				return m, navigateSignedOut()
			}
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.status = "Profile updated"
		m.inputs[0].SetValue("")
		m.inputs[1].SetValue("")
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
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

			name := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if name == "" && pass == "" {
				m.errMsg = "Nothing to change"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdSave(name, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	if snap := m.session.Snapshot(); snap.User != nil {
		b.WriteString("Email: ")
		b.WriteString(snap.User.Email)
		b.WriteString("\nName:  ")
		b.WriteString(snap.User.Name)
		b.WriteString("\n\n")
	}

	b.WriteString("New name     [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("New password [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m *ProfileModel) cmdSave(name, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return profileSavedMsg{err: session.UpdateProfile(ctx, name, pass)}
	}
}

func (m *ProfileModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ProfileModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
