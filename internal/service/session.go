package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/internal/store"
	"github.com/daystar-app/daystar-client/models"
)

type sessionManager struct {
	adapter adapter.ServerAdapter
	creds   store.CredentialStore
	logger  *logger.Logger

	mu      sync.RWMutex
	session models.Session
	subs    []func(models.Session)
}

// NewSessionManager constructs the [SessionManager] owning the single
// live session of the process. The session starts in
// [models.StateUnknown] until Bootstrap runs.
func NewSessionManager(serverAdapter adapter.ServerAdapter, creds store.CredentialStore, log *logger.Logger) SessionManager {
	return &sessionManager{
		adapter: serverAdapter,
		creds:   creds,
		logger:  log,
		session: models.Session{State: models.StateUnknown},
	}
}

// Snapshot implements [SessionManager]. The user profile is copied so a
// consumer can never reach into the owned session.
func (m *sessionManager) Snapshot() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySession(m.session)
}

// Subscribe implements [SessionManager].
func (m *sessionManager) Subscribe(fn func(models.Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// transition replaces the session and notifies subscribers with a copy.
// The full read-modify-write completes under the lock; callbacks run
// after it is released so they can call Snapshot freely.
func (m *sessionManager) transition(next models.Session) {
	m.mu.Lock()
	m.session = next
	subs := make([]func(models.Session), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	snapshot := copySession(next)
	for _, fn := range subs {
		fn(snapshot)
	}
}

func copySession(s models.Session) models.Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}

// Bootstrap implements [SessionManager]. Every code path terminates in a
// settled state; verifying is only ever a waypoint.
func (m *sessionManager) Bootstrap(ctx context.Context) error {
	token, err := m.creds.Read(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoCredential) {
			m.logger.Error().Err(err).Msg("bootstrap: credential read failed")
			m.transition(models.Session{State: models.StateUnauthenticated})
			return fmt.Errorf("bootstrap read credential: %w", err)
		}
		m.transition(models.Session{State: models.StateUnauthenticated})
		return nil
	}

	m.transition(models.Session{State: models.StateVerifying})

	if claims, err := models.PeekTokenClaims(token); err == nil && claims.Expired(time.Now()) {
		m.logger.Debug().Time("exp", claims.ExpiresAt).Msg("bootstrap: stored token already expired")
	}

	user, err := m.adapter.Verify(ctx)
	if err != nil {
		// The gateway already cleared the store on 401/403; clearing
		// again covers every other failure and is idempotent.
		if clearErr := m.creds.Clear(ctx); clearErr != nil {
			m.logger.Error().Err(clearErr).Msg("bootstrap: credential clear failed")
		}
		m.logger.Info().Err(err).Msg("bootstrap: stored token rejected, settling unauthenticated")
		m.transition(models.Session{State: models.StateUnauthenticated})
		return nil
	}

	m.transition(models.Session{State: models.StateAuthenticated, Token: token, User: user})
	return nil
}

// LoginWithGoogle implements [SessionManager].
func (m *sessionManager) LoginWithGoogle(ctx context.Context, idToken string) error {
	token, user, err := m.adapter.LoginWithGoogle(ctx, idToken)
	if err != nil {
		return err
	}
	return m.completeLogin(ctx, token, user)
}

// LoginWithPassword implements [SessionManager].
func (m *sessionManager) LoginWithPassword(ctx context.Context, email, password string) error {
	token, user, err := m.adapter.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.completeLogin(ctx, token, user)
}

// Signup implements [SessionManager].
func (m *sessionManager) Signup(ctx context.Context, email, password, name string) error {
	token, user, err := m.adapter.Register(ctx, email, password, name)
	if err != nil {
		return err
	}
	return m.completeLogin(ctx, token, user)
}

// completeLogin persists the fresh token and settles authenticated. A
// persistence failure leaves the session unchanged so the operation
// stays atomic for the caller.
func (m *sessionManager) completeLogin(ctx context.Context, token string, user *models.UserProfile) error {
	if err := m.creds.Save(ctx, token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	m.transition(models.Session{State: models.StateAuthenticated, Token: token, User: user})
	m.logger.Info().Str("user", user.Email).Msg("session authenticated")
	return nil
}

// UpdateProfile implements [SessionManager]. Only the user field of the
// session changes; the token and state are untouched on success.
func (m *sessionManager) UpdateProfile(ctx context.Context, name, password string) error {
	if !m.Snapshot().Authenticated() {
		return ErrNotAuthenticated
	}

	user, err := m.adapter.UpdateProfile(ctx, name, password)
	if err != nil {
		if adapter.IsAuthFailure(err) {
			m.Invalidate(ctx)
		}
		return err
	}

	m.mu.Lock()
	if m.session.State == models.StateAuthenticated {
		m.session.User = user
	}
	next := m.session
	subs := make([]func(models.Session), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	snapshot := copySession(next)
	for _, fn := range subs {
		fn(snapshot)
	}
	return nil
}

// Logout implements [SessionManager]. Local-first: the session settles
// unauthenticated even if clearing the store fails, and no network call
// is involved.
func (m *sessionManager) Logout(ctx context.Context) error {
	err := m.creds.Clear(ctx)
	m.transition(models.Session{State: models.StateUnauthenticated})
	if err != nil {
		return fmt.Errorf("clear credential on logout: %w", err)
	}
	return nil
}

// Invalidate implements [SessionManager].
func (m *sessionManager) Invalidate(ctx context.Context) {
	if err := m.creds.Clear(ctx); err != nil {
		m.logger.Error().Err(err).Msg("invalidate: credential clear failed")
	}
	if m.Snapshot().State != models.StateUnauthenticated {
		m.logger.Info().Msg("session invalidated after authorization failure")
		m.transition(models.Session{State: models.StateUnauthenticated})
	}
}
