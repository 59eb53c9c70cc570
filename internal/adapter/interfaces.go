// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// Daystar server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty with two
// cross-cutting behaviours wrapped around every call: request decoration
// (the current credential is read from the credential store on every
// request, never cached, and attached as a bearer token) and response
// inspection (a 401/403 clears the credential store before the rejection
// reaches the caller).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrValidation] for a
// structured 4xx).
package adapter

import (
	"context"

	"github.com/daystar-app/daystar-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Daystar
// server. Implementations are responsible for serialisation, credential
// header management, and mapping transport-level errors to the sentinel
// values defined in this package. No method retries on its own; retry
// policy, if any, belongs to the caller.
type ServerAdapter interface {
	// LoginWithGoogle exchanges a Google ID token for a session token
	// and the account profile via POST /auth/google.
	LoginWithGoogle(ctx context.Context, idToken string) (string, *models.UserProfile, error)

	// Login authenticates with email and password via POST /auth/login.
	// On failure the server's message is preserved verbatim in the
	// returned error.
	Login(ctx context.Context, email, password string) (string, *models.UserProfile, error)

	// Register creates a new account via POST /auth/register. Validation
	// failures (e.g. password policy) carry the server's field-keyed
	// details map via [ValidationError].
	Register(ctx context.Context, email, password, name string) (string, *models.UserProfile, error)

	// Verify checks the stored credential via GET /auth/verify and
	// returns the profile bound to it. A token the server no longer
	// accepts surfaces as [ErrUnauthorized].
	Verify(ctx context.Context) (*models.UserProfile, error)

	// UpdateProfile replaces the account name, and optionally the
	// password, via PUT /auth/profile. Returns the updated profile.
	UpdateProfile(ctx context.Context, name, password string) (*models.UserProfile, error)

	// ListHabits fetches the full habit collection via GET /habits.
	ListHabits(ctx context.Context) ([]models.Habit, error)

	// CreateHabit creates a habit via POST /habits and returns the
	// server-side record.
	CreateHabit(ctx context.Context, fields models.HabitFields) (*models.Habit, error)

	// UpdateHabit replaces the editable fields of a habit via
	// PUT /habits/:id and returns the server-side record.
	UpdateHabit(ctx context.Context, id int64, fields models.HabitFields) (*models.Habit, error)

	// CheckIn submits a check-in for the given local calendar date via
	// POST /habits/:id/checkin. The server decides whether the date is
	// already taken; a duplicate surfaces as [ErrValidation] with the
	// server's message.
	CheckIn(ctx context.Context, habitID int64, localDate string) (*models.Habit, error)

	// ListCheckIns fetches the check-in history of a habit via
	// GET /habits/:id/checkins.
	ListCheckIns(ctx context.Context, habitID int64) ([]models.CheckIn, error)
}
