package models

// Request and response envelopes for the Daystar REST API. Field names
// mirror the server contract exactly; the client never invents fields.

// GoogleLoginRequest is the body of POST /auth/google.
type GoogleLoginRequest struct {
	// IDToken is the Google-issued OpenID Connect ID token obtained by
	// the sign-in flow. The server exchanges it for a session token.
	IDToken string `json:"idToken"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UpdateProfileRequest is the body of PUT /auth/profile. Password is
// omitted entirely when the user is not changing it.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
}

// CheckInRequest is the body of POST /habits/:id/checkin. LocalDate is
// the client's local calendar day in [CheckInDateLayout] form.
type CheckInRequest struct {
	LocalDate string `json:"localDate"`
}

// AuthResponse is returned by the login, register, and google endpoints.
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *UserProfile `json:"user"`
}

// VerifyResponse is returned by GET /auth/verify. Valid reports whether
// the presented bearer token is still accepted.
type VerifyResponse struct {
	Success bool         `json:"success"`
	Valid   bool         `json:"valid"`
	User    *UserProfile `json:"user"`
}

// ProfileResponse is returned by PUT /auth/profile.
type ProfileResponse struct {
	Success bool         `json:"success"`
	User    *UserProfile `json:"user"`
}

// HabitsResponse is returned by GET /habits.
type HabitsResponse struct {
	Success bool    `json:"success"`
	Habits  []Habit `json:"habits"`
}

// HabitResponse is returned by the habit create, update, and check-in
// endpoints. Habit carries the full server-side record including any
// recomputed streak.
type HabitResponse struct {
	Success bool   `json:"success"`
	Habit   *Habit `json:"habit"`
}

// CheckInsResponse is returned by GET /habits/:id/checkins.
type CheckInsResponse struct {
	Success  bool      `json:"success"`
	CheckIns []CheckIn `json:"checkIns"`
}

// ErrorResponse is the failure envelope used by every endpoint. Details,
// when present, is a field-keyed validation map (e.g. password policy
// violations keyed by "password").
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
