package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystar-app/daystar-client/models"
)

// NavigateTo switches the active page. Payload, when non-nil, is
// delivered to the target page instead of running its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes any of the three sign-in flows (password, google,
// signup). Handled by [RootModel] to move to the habits page.
type LoginResult struct {
	Err error
}

// SessionExpiredNotice is shown on the welcome page after the server
// rejected the session mid-use.
type SessionExpiredNotice struct{}

// editHabitMsg opens the habit form; a nil habit means "create new".
type editHabitMsg struct {
	habit *models.Habit
}

// showHistoryMsg opens the check-in history page for one habit.
type showHistoryMsg struct {
	habit models.Habit
}

type habitsLoadedMsg struct {
	habits []models.Habit
	err    error
}

type habitSavedMsg struct {
	err error
}

type checkInDoneMsg struct {
	duplicate bool
	err       error
}

type historyLoadedMsg struct {
	habit    models.Habit
	checkIns []models.CheckIn
	err      error
}

type profileSavedMsg struct {
	err error
}

type loggedOutMsg struct{}

type clearStatusMsg struct{}
