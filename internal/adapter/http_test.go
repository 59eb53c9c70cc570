// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daystar-app/daystar-client/internal/crypto"
	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/internal/store"
	"github.com/daystar-app/daystar-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at a test server,
// backed by a real file credential store in a temp dir.
func newTestAdapter(t *testing.T, serverURL string) (*httpServerAdapter, store.CredentialStore) {
	t.Helper()

	creds, err := store.NewFileCredentialStore(t.TempDir(), crypto.NewKeychainService())
	require.NoError(t, err)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL}, creds, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter), creds
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Request decoration ──────────────────────────────────────────────────────

func TestDecoration_AttachesStoredBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		writeJSON(t, w, http.StatusOK, models.HabitsResponse{Success: true})
	}))
	defer srv.Close()

	a, creds := newTestAdapter(t, srv.URL)
	require.NoError(t, creds.Save(context.Background(), "stored-token"))

	_, err := a.ListHabits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", gotAuth)
}

func TestDecoration_ReadsStoreOnEveryCall(t *testing.T) {
	var headers []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.HabitsResponse{Success: true})
	}))
	defer srv.Close()

	a, creds := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, creds.Save(ctx, "first"))
	_, err := a.ListHabits(ctx)
	require.NoError(t, err)

	// A cleared credential must never be reused by the next request.
	require.NoError(t, creds.Clear(ctx))
	_, err = a.ListHabits(ctx)
	require.NoError(t, err)

	require.Len(t, headers, 2)
	assert.Equal(t, "Bearer first", headers[0])
	assert.Empty(t, headers[1])
}

// ── Response inspection ─────────────────────────────────────────────────────

func TestInspection_401ClearsCredentialStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "token expired"})
	}))
	defer srv.Close()

	a, creds := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, creds.Save(ctx, "stale-token"))

	_, err := a.ListHabits(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// By the time the rejection reaches the caller, the store is empty.
	_, err = creds.Read(ctx)
	assert.ErrorIs(t, err, store.ErrNoCredential)
}

func TestInspection_403ClearsCredentialStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
	}))
	defer srv.Close()

	a, creds := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, creds.Save(ctx, "stale-token"))

	_, err := a.Verify(ctx)
	require.Error(t, err)
	assert.True(t, IsAuthFailure(err))

	_, err = creds.Read(ctx)
	assert.ErrorIs(t, err, store.ErrNoCredential)
}

// ── Auth endpoints ──────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Success: true,
			Token:   "fresh-token",
			User:    &models.UserProfile{ID: "u1", Email: "a@b.com", Name: "Alice"},
		})
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	token, user, err := a.Login(context.Background(), "a@b.com", "Secret1")

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, "Alice", user.Name)
}

func TestLogin_InvalidCredentialsMessagePreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid email or password"})
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	_, _, err := a.Login(context.Background(), "a@b.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid email or password", ve.Message)
}

func TestRegister_PasswordPolicyDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Validation failed",
			Details: map[string]string{"password": "Password must contain at least 1 uppercase letter"},
		})
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	_, _, err := a.Register(context.Background(), "a@b.com", "weak", "Alice")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Details["password"], "uppercase")
}

func TestVerify_ValidFalseIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.VerifyResponse{Success: true, Valid: false})
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	_, err := a.Verify(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auth/profile", r.URL.Path)

		var req models.UpdateProfileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "New Name", req.Name)
		assert.Empty(t, req.Password)

		writeJSON(t, w, http.StatusOK, models.ProfileResponse{
			Success: true,
			User:    &models.UserProfile{ID: "u1", Email: "a@b.com", Name: req.Name},
		})
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	user, err := a.UpdateProfile(context.Background(), "New Name", "")

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

// ── Habit endpoints ─────────────────────────────────────────────────────────

func TestCheckIn_SubmitsLocalDateAndReturnsHabit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/habits/7/checkin", r.URL.Path)

		var req models.CheckInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2026-08-28", req.LocalDate)

		writeJSON(t, w, http.StatusOK, models.HabitResponse{
			Success: true,
			Habit:   &models.Habit{ID: 7, Title: "Run", Streak: 1},
		})
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	habit, err := a.CheckIn(context.Background(), 7, "2026-08-28")

	require.NoError(t, err)
	assert.Equal(t, 1, habit.Streak)
}

func TestCheckIn_DuplicateIsValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Already checked in today"})
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	_, err := a.CheckIn(context.Background(), 7, "2026-08-28")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, IsAuthFailure(err))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Already checked in today", ve.Message)
}

func TestListHabits_DecodesWireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"habits":[
			{"id":1,"title":"Run","icon":"🏃","colour":"#FCD34D","streak":3,"created_at":"2026-08-01T10:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	habits, err := a.ListHabits(context.Background())

	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "Run", habits[0].Title)
	assert.Equal(t, 3, habits[0].Streak)
}

func TestListCheckIns_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/habits/7/checkins", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"checkIns":[
			{"id":11,"habit_id":7,"check_in_date":"2026-08-28","created_at":"2026-08-28T08:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	checkIns, err := a.ListCheckIns(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, checkIns, 1)
	assert.Equal(t, "2026-08-28", checkIns[0].CheckInDate)
}

func TestServerFailure_MappedToErrServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	_, err := a.ListHabits(context.Background())

	assert.ErrorIs(t, err, ErrServer)
}

func TestTransportFailure_PropagatesWithoutRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a, _ := newTestAdapter(t, srv.URL)
	_, err := a.ListHabits(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrServer))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	creds, err := store.NewFileCredentialStore(t.TempDir(), crypto.NewKeychainService())
	require.NoError(t, err)

	_, err = NewHTTPServerAdapter(HTTPClientConfig{BaseURL: "   "}, creds, logger.Nop())
	assert.Error(t, err)
}
