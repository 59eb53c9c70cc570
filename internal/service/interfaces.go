// Package service implements the client core: the auth session manager
// that owns the process-wide [models.Session], and the habit
// synchronization controller that keeps the local habit view consistent
// with server-computed state after every mutation.
package service

import (
	"context"
	"time"

	"github.com/daystar-app/daystar-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionManager owns the single live [models.Session] of the process.
// Every operation is atomic from the caller's perspective: it either
// fully succeeds and updates both the session and the credential store,
// or fails and leaves both unchanged. All other components observe the
// session read-only through Snapshot and Subscribe.
type SessionManager interface {
	// Bootstrap runs once at startup. With no stored credential the
	// session settles unauthenticated; with one, it passes through
	// verifying and settles according to the server's verdict, clearing
	// the store on any failure. No code path leaves the session in a
	// transient state.
	Bootstrap(ctx context.Context) error

	// LoginWithGoogle exchanges a Google ID token for a session.
	LoginWithGoogle(ctx context.Context, idToken string) error

	// LoginWithPassword authenticates with email and password. On
	// failure the session is unchanged and the server's message is
	// surfaced verbatim.
	LoginWithPassword(ctx context.Context, email, password string) error

	// Signup creates an account and logs it in. Server-side validation
	// messages (e.g. password policy) are surfaced verbatim.
	Signup(ctx context.Context, email, password, name string) error

	// UpdateProfile replaces the account name and optionally the
	// password. Requires an authenticated session; on success only the
	// user field of the session changes. Rapid successive calls are
	// last-write-wins.
	UpdateProfile(ctx context.Context, name, password string) error

	// Logout is local-first: it clears the credential store and settles
	// the session unauthenticated regardless of network reachability.
	Logout(ctx context.Context) error

	// Invalidate settles the session unauthenticated after another
	// component observed an authorization failure. The gateway has
	// already cleared the credential store by then; Invalidate clears
	// it again and flips the state. Idempotent.
	Invalidate(ctx context.Context)

	// Snapshot returns a copy of the current session. Consumers never
	// mutate it.
	Snapshot() models.Session

	// Subscribe registers fn to be called with a session snapshot after
	// every state transition. Callbacks run synchronously on the
	// mutating goroutine and must be fast.
	Subscribe(fn func(models.Session))
}

// HabitService keeps a local read cache of the habit collection for
// display. The cache is never authoritative: it is replaced wholesale
// from the server after every mutation, never patched, so displayed
// streak values are always server-computed.
//
// All operations require an authenticated session. Reads return empty
// results otherwise; mutations return [ErrNotAuthenticated].
type HabitService interface {
	// Habits returns the current cache snapshot.
	Habits() []models.Habit

	// ListHabits fetches the collection and replaces the cache
	// wholesale, returning the fresh list.
	ListHabits(ctx context.Context) ([]models.Habit, error)

	// CreateHabit validates only that fields.Title is non-empty (all
	// other validation is server-authoritative), creates the habit, and
	// re-lists rather than splicing the returned object into the cache.
	CreateHabit(ctx context.Context, fields models.HabitFields) error

	// UpdateHabit replaces the editable fields of a habit and re-lists.
	UpdateHabit(ctx context.Context, id int64, fields models.HabitFields) error

	// CheckIn submits the device-local calendar date for habitID and on
	// success re-lists to obtain the updated streak. A duplicate-date
	// rejection surfaces as [ErrAlreadyCheckedIn], distinguishable from
	// a transport failure. Callers must not issue concurrent CheckIn
	// calls for the same habit; the server enforces the true invariant.
	CheckIn(ctx context.Context, habitID int64) error

	// ListCheckIns fetches the check-in history of one habit.
	ListCheckIns(ctx context.Context, habitID int64) ([]models.CheckIn, error)
}

// RefreshJob is a background worker that periodically re-lists habits
// while the session is authenticated, so streak resets computed by the
// server (e.g. at midnight) reach the display without a user action.
type RefreshJob interface {
	// Start launches the background goroutine, refreshing every
	// interval (default 5 minutes when non-positive). Any previously
	// running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has
	// terminated. Safe to call when not running.
	Stop()
}
