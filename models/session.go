package models

// SessionState describes where the client currently stands in the
// authentication lifecycle.
//
// StateUnknown and StateVerifying are transient and only reachable during
// bootstrap; StateAuthenticated and StateUnauthenticated are the only
// resting states. Consumers must treat the transient states as "not yet
// decided" and hold off dependent work until the session settles.
type SessionState int

const (
	// StateUnknown is the initial state before bootstrap has run.
	StateUnknown SessionState = iota

	// StateVerifying means a persisted token was found and is being
	// checked against the server.
	StateVerifying

	// StateAuthenticated means the client holds a valid session token.
	StateAuthenticated

	// StateUnauthenticated means no valid credential exists.
	StateUnauthenticated
)

// String implements [fmt.Stringer].
func (s SessionState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Settled reports whether the state is one of the two resting states.
func (s SessionState) Settled() bool {
	return s == StateAuthenticated || s == StateUnauthenticated
}

// Session is the client's belief about whether the current user is
// authenticated and who they are. Exactly one live Session exists per
// process; it is owned by the session manager and observed read-only by
// every other component.
//
// Invariants: Token is non-empty iff State == StateAuthenticated, and
// User is non-nil iff Token is non-empty.
type Session struct {
	// State is the current position in the authentication lifecycle.
	State SessionState

	// Token is the opaque bearer credential proving the session to the
	// server. Empty unless State is StateAuthenticated.
	Token string

	// User is the profile returned by the server for this session.
	// Nil unless State is StateAuthenticated.
	User *UserProfile
}

// Authenticated reports whether the session holds a live credential.
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated
}
