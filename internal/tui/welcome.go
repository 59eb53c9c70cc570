package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystar-app/daystar-client/internal/oauth"
	"github.com/daystar-app/daystar-client/internal/service"
)

// WelcomeModel is the signed-out landing page. It offers the three ways
// into the app: password sign-in, Google sign-in, and account creation.
type WelcomeModel struct {
	ctx     context.Context
	session service.SessionManager
	google  oauth.GoogleAuthenticator

	items      []string
	idx        int
	submitting bool
	status     string
	errMsg     string
}

func NewWelcomeModel(ctx context.Context, session service.SessionManager, google oauth.GoogleAuthenticator) *WelcomeModel {
	return &WelcomeModel{
		ctx:     ctx,
		session: session,
		google:  google,
		items:   []string{"Sign in", "Sign in with Google", "Create account"},
	}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionExpiredNotice:
		m.status = "Your session expired, please sign in again"
		return m, nil
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.Err)
		}
		return m, nil
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
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case 1:
			m.submitting = true
			return m, m.cmdGoogleSignIn()
		case 2:
			return m, func() tea.Msg { return NavigateTo{Page: "signup"} }
		}
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, item))
	}

	if m.submitting {
		b.WriteString("\nWaiting for the browser to finish sign-in...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("DAYSTAR", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}

// cmdGoogleSignIn runs the browser consent flow and exchanges the
// Google ID token for a daystar session.
func (m *WelcomeModel) cmdGoogleSignIn() tea.Cmd {
	ctx := m.ctx
	session := m.session
	google := m.google

	return func() tea.Msg {
		idToken, err := google.SignIn(ctx)
		if err != nil {
			return LoginResult{Err: err}
		}
		return LoginResult{Err: session.LoginWithGoogle(ctx, idToken)}
	}
}
