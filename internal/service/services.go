package service

import (
	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/internal/store"
)

// ClientServices bundles the client core for wiring by the app entry
// point.
type ClientServices struct {
	Session    SessionManager
	Habits     HabitService
	RefreshJob RefreshJob
}

// NewClientServices constructs the session manager, the habit
// synchronization controller, and the background refresh job over a
// shared server adapter and credential store.
func NewClientServices(serverAdapter adapter.ServerAdapter, creds store.CredentialStore, log *logger.Logger) *ClientServices {
	session := NewSessionManager(serverAdapter, creds, log.GetChildLogger())
	habits := NewHabitService(serverAdapter, session, log.GetChildLogger())

	return &ClientServices{
		Session:    session,
		Habits:     habits,
		RefreshJob: NewRefreshJob(habits, session),
	}
}
