package service

import "errors"

var (
	// ErrNotAuthenticated marks an operation that needs a live session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrTitleRequired is the single piece of local habit validation;
	// everything else is server-authoritative.
	ErrTitleRequired = errors.New("habit title is required")

	// ErrAlreadyCheckedIn marks the expected business outcome of a
	// second check-in on the same calendar day. It wraps the server's
	// message so the UI can phrase it without re-deriving the reason.
	ErrAlreadyCheckedIn = errors.New("already checked in")
)
