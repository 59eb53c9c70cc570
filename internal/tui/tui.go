// Package tui implements the terminal front-end: a Bubble Tea page
// router over the session and habit services.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/internal/oauth"
	"github.com/daystar-app/daystar-client/internal/service"
	"github.com/daystar-app/daystar-client/models"
)

type TUI struct {
	services *service.ClientServices
	google   oauth.GoogleAuthenticator
	logger   *logger.Logger
}

func New(services *service.ClientServices, google oauth.GoogleAuthenticator, log *logger.Logger) *TUI {
	return &TUI{services: services, google: google, logger: log}
}

// Run drives the whole UI in a single Bubble Tea program. The start page
// depends on the bootstrapped session: an authenticated session opens
// straight on the habits page.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"welcome":    NewWelcomeModel(ctx, t.services.Session, t.google),
		"login":      NewLoginModel(ctx, t.services.Session),
		"signup":     NewSignupModel(ctx, t.services.Session),
		"habits":     NewHabitsModel(ctx, t.services.Session, t.services.Habits),
		"habit_form": NewHabitFormModel(ctx, t.services.Habits),
		"history":    NewHistoryModel(ctx, t.services.Habits),
		"profile":    NewProfileModel(ctx, t.services.Session),
	}

	startPage := "welcome"
	if t.services.Session.Snapshot().State == models.StateAuthenticated {
		startPage = "habits"
	}

	root := NewRootModel(pages, startPage)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
