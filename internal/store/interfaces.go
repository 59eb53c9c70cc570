// Package store implements durable client-side persistence. The only
// state the client persists is the single opaque session token, held by
// the credential store encrypted at rest.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore persists exactly one opaque session token. All
// operations are idempotent: Save overwrites any prior value, Clear
// followed by Read reports absence, and repeated calls are safe.
//
// There is no retry policy. A storage failure is fatal to the calling
// operation and surfaces as an error to its caller.
type CredentialStore interface {
	// Save persists token, replacing any previously stored value.
	Save(ctx context.Context, token string) error

	// Read returns the stored token, or [ErrNoCredential] if none is
	// persisted.
	Read(ctx context.Context) (string, error)

	// Clear removes the stored token. Clearing an empty store is a
	// no-op, not an error.
	Clear(ctx context.Context) error
}
