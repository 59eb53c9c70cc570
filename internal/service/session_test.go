package service

import (
	"context"
	"errors"
	"testing"

	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/internal/mock"
	"github.com/daystar-app/daystar-client/internal/store"
	"github.com/daystar-app/daystar-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionManager builds a sessionManager with mocked adapter and
// credential store.
func newTestSessionManager(t *testing.T, ctrl *gomock.Controller) (*sessionManager, *mock.MockServerAdapter, *mock.MockCredentialStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCreds := mock.NewMockCredentialStore(ctrl)

	m := NewSessionManager(mockAdapter, mockCreds, logger.Nop()).(*sessionManager)
	return m, mockAdapter, mockCreds
}

// recordStates subscribes and collects every observed session state.
func recordStates(m *sessionManager) *[]models.SessionState {
	var states []models.SessionState
	m.Subscribe(func(s models.Session) {
		states = append(states, s.State)
	})
	return &states
}

// ── Bootstrap ───────────────────────────────────────────────────────────────

func TestBootstrap_NoStoredCredentialSettlesUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockCreds := newTestSessionManager(t, ctrl)
	states := recordStates(m)
	ctx := context.Background()

	mockCreds.EXPECT().Read(ctx).Return("", store.ErrNoCredential)

	require.NoError(t, m.Bootstrap(ctx))

	assert.Equal(t, models.StateUnauthenticated, m.Snapshot().State)
	assert.NotContains(t, *states, models.StateAuthenticated)
	assert.NotContains(t, *states, models.StateVerifying)
}

func TestBootstrap_StoredTokenVerifiesSuccessfully(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	states := recordStates(m)
	ctx := context.Background()

	user := &models.UserProfile{ID: "u1", Email: "a@b.com", Name: "Alice"}
	gomock.InOrder(
		mockCreds.EXPECT().Read(ctx).Return("stored-token", nil),
		mockAdapter.EXPECT().Verify(ctx).Return(user, nil),
	)

	require.NoError(t, m.Bootstrap(ctx))

	snap := m.Snapshot()
	assert.Equal(t, models.StateAuthenticated, snap.State)
	assert.Equal(t, "stored-token", snap.Token)
	assert.Equal(t, "a@b.com", snap.User.Email)
	// verifying is passed through exactly once before settlement
	assert.Equal(t, []models.SessionState{models.StateVerifying, models.StateAuthenticated}, *states)
}

func TestBootstrap_VerifyRejectedClearsStoreAndSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockCreds.EXPECT().Read(ctx).Return("stale-token", nil),
		mockAdapter.EXPECT().Verify(ctx).Return(nil, adapter.ErrUnauthorized),
		mockCreds.EXPECT().Clear(ctx).Return(nil),
	)

	require.NoError(t, m.Bootstrap(ctx))

	snap := m.Snapshot()
	assert.Equal(t, models.StateUnauthenticated, snap.State)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
}

func TestBootstrap_VerifyTransportFailureStillSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockCreds.EXPECT().Read(ctx).Return("token", nil),
		mockAdapter.EXPECT().Verify(ctx).Return(nil, errors.New("dial tcp: connection refused")),
		mockCreds.EXPECT().Clear(ctx).Return(nil),
	)

	require.NoError(t, m.Bootstrap(ctx))
	assert.True(t, m.Snapshot().State.Settled(), "bootstrap must never leave the session in a transient state")
}

func TestBootstrap_CredentialReadFailureSettlesAndSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().Read(ctx).Return("", errors.New("disk gone"))

	err := m.Bootstrap(ctx)
	require.Error(t, err)
	assert.Equal(t, models.StateUnauthenticated, m.Snapshot().State)
}

// ── Login variants ──────────────────────────────────────────────────────────

func TestLoginWithPassword_PersistsTokenThenAuthenticates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	user := &models.UserProfile{ID: "u1", Email: "a@b.com", Name: "Alice"}
	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "a@b.com", "Secret1").Return("fresh-token", user, nil),
		mockCreds.EXPECT().Save(ctx, "fresh-token").Return(nil),
	)

	require.NoError(t, m.LoginWithPassword(ctx, "a@b.com", "Secret1"))

	snap := m.Snapshot()
	assert.Equal(t, models.StateAuthenticated, snap.State)
	assert.Equal(t, "fresh-token", snap.Token)
	assert.Equal(t, "a@b.com", snap.User.Email)
}

func TestLoginWithPassword_ServerRejectionLeavesSessionUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, _ := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	serverErr := &adapter.ValidationError{Status: 400, Message: "Invalid email or password"}
	mockAdapter.EXPECT().Login(ctx, "a@b.com", "wrong").Return("", nil, serverErr)

	err := m.LoginWithPassword(ctx, "a@b.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password", "server message must be surfaced verbatim")
	assert.Equal(t, models.StateUnknown, m.Snapshot().State)
}

func TestLoginWithPassword_PersistFailureLeavesSessionUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "a@b.com", "Secret1").
			Return("token", &models.UserProfile{Email: "a@b.com"}, nil),
		mockCreds.EXPECT().Save(ctx, "token").Return(errors.New("disk full")),
	)

	err := m.LoginWithPassword(ctx, "a@b.com", "Secret1")
	require.Error(t, err)
	assert.NotEqual(t, models.StateAuthenticated, m.Snapshot().State)
}

func TestSignup_PasswordPolicyMessageSurfacedVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, _ := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	serverErr := &adapter.ValidationError{
		Status:  400,
		Message: "Validation failed",
		Details: map[string]string{"password": "Password must contain at least 1 uppercase letter"},
	}
	mockAdapter.EXPECT().Register(ctx, "a@b.com", "weak", "Alice").Return("", nil, serverErr)

	err := m.Signup(ctx, "a@b.com", "weak", "Alice")
	require.Error(t, err)

	var ve *adapter.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Details["password"], "uppercase")
}

func TestLoginWithGoogle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	user := &models.UserProfile{ID: "u2", Email: "g@b.com", Name: "Gal", PictureURL: "https://lh3/photo"}
	gomock.InOrder(
		mockAdapter.EXPECT().LoginWithGoogle(ctx, "google-id-token").Return("g-token", user, nil),
		mockCreds.EXPECT().Save(ctx, "g-token").Return(nil),
	)

	require.NoError(t, m.LoginWithGoogle(ctx, "google-id-token"))
	assert.Equal(t, "https://lh3/photo", m.Snapshot().User.PictureURL)
}

// ── UpdateProfile ───────────────────────────────────────────────────────────

func TestUpdateProfile_ReplacesUserOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "a@b.com", "Secret1").
			Return("token", &models.UserProfile{ID: "u1", Email: "a@b.com", Name: "Alice"}, nil),
		mockCreds.EXPECT().Save(ctx, "token").Return(nil),
		mockAdapter.EXPECT().UpdateProfile(ctx, "New Name", "").
			Return(&models.UserProfile{ID: "u1", Email: "a@b.com", Name: "New Name"}, nil),
	)

	require.NoError(t, m.LoginWithPassword(ctx, "a@b.com", "Secret1"))
	require.NoError(t, m.UpdateProfile(ctx, "New Name", ""))

	snap := m.Snapshot()
	assert.Equal(t, "New Name", snap.User.Name)
	assert.Equal(t, "token", snap.Token, "token must be untouched by a profile update")
	assert.Equal(t, models.StateAuthenticated, snap.State)
}

func TestUpdateProfile_RequiresAuthenticatedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestSessionManager(t, ctrl)

	err := m.UpdateProfile(context.Background(), "Name", "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateProfile_AuthFailureInvalidatesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "a@b.com", "Secret1").
			Return("token", &models.UserProfile{Email: "a@b.com"}, nil),
		mockCreds.EXPECT().Save(ctx, "token").Return(nil),
		mockAdapter.EXPECT().UpdateProfile(ctx, "Name", "").Return(nil, adapter.ErrUnauthorized),
		mockCreds.EXPECT().Clear(ctx).Return(nil),
	)

	require.NoError(t, m.LoginWithPassword(ctx, "a@b.com", "Secret1"))

	err := m.UpdateProfile(ctx, "Name", "")
	require.Error(t, err)
	assert.Equal(t, models.StateUnauthenticated, m.Snapshot().State)
}

// ── Logout / Invalidate ─────────────────────────────────────────────────────

func TestLogout_AlwaysSettlesUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "a@b.com", "Secret1").
			Return("token", &models.UserProfile{Email: "a@b.com"}, nil),
		mockCreds.EXPECT().Save(ctx, "token").Return(nil),
		mockCreds.EXPECT().Clear(ctx).Return(nil),
	)

	require.NoError(t, m.LoginWithPassword(ctx, "a@b.com", "Secret1"))
	require.NoError(t, m.Logout(ctx))

	snap := m.Snapshot()
	assert.Equal(t, models.StateUnauthenticated, snap.State)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
}

func TestLogout_SettlesEvenWhenClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().Clear(ctx).Return(errors.New("io error"))

	err := m.Logout(ctx)
	require.Error(t, err)
	assert.Equal(t, models.StateUnauthenticated, m.Snapshot().State)
}

func TestInvalidate_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, mockCreds := newTestSessionManager(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().Clear(ctx).Return(nil).Times(2)

	m.Invalidate(ctx)
	m.Invalidate(ctx)

	assert.Equal(t, models.StateUnauthenticated, m.Snapshot().State)
}

func TestSubscribe_ObserversSeeSettledTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockAdapter, mockCreds := newTestSessionManager(t, ctrl)
	states := recordStates(m)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "a@b.com", "Secret1").
			Return("token", &models.UserProfile{Email: "a@b.com"}, nil),
		mockCreds.EXPECT().Save(ctx, "token").Return(nil),
		mockCreds.EXPECT().Clear(ctx).Return(nil),
	)

	require.NoError(t, m.LoginWithPassword(ctx, "a@b.com", "Secret1"))
	require.NoError(t, m.Logout(ctx))

	assert.Equal(t, []models.SessionState{models.StateAuthenticated, models.StateUnauthenticated}, *states)
}
