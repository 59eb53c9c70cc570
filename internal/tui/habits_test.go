package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daystar-app/daystar-client/internal/mock"
	"github.com/daystar-app/daystar-client/models"
)

func pressKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHabitsModel_CheckInDisabledWhileOneIsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	habits := mock.NewMockHabitService(ctrl)
	session := mock.NewMockSessionManager(ctrl)
	m := NewHabitsModel(context.Background(), session, habits)

	_, _ = m.Update(habitsLoadedMsg{habits: []models.Habit{{ID: 1, Title: "Meditate"}}})

	// One submission per completed round trip, no matter how fast the
	// key repeats.
	habits.EXPECT().CheckIn(gomock.Any(), int64(1)).Return(nil).Times(2)

	_, first := m.Update(pressKey('c'))
	require.NotNil(t, first, "first press submits the check-in")

	_, repeat := m.Update(pressKey('c'))
	require.Nil(t, repeat, "repeat press while a check-in is pending must do nothing")

	done, ok := first().(checkInDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	_, _ = m.Update(done)

	_, next := m.Update(pressKey('c'))
	require.NotNil(t, next, "completion re-arms the check-in key")
	_ = next()
}

func TestHabitsModel_CheckInReArmedAfterDuplicateRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	habits := mock.NewMockHabitService(ctrl)
	session := mock.NewMockSessionManager(ctrl)
	m := NewHabitsModel(context.Background(), session, habits)

	_, _ = m.Update(habitsLoadedMsg{habits: []models.Habit{{ID: 1, Title: "Meditate"}}})

	habits.EXPECT().CheckIn(gomock.Any(), int64(1)).Return(nil).Times(1)

	_, cmd := m.Update(pressKey(' '))
	require.NotNil(t, cmd, "space is an alias for check-in")
	_ = cmd()

	// The duplicate outcome still re-enables the key for the next day.
	_, _ = m.Update(checkInDoneMsg{duplicate: true, err: errors.New("already checked in today")})
	require.False(t, m.checkingIn)
}
