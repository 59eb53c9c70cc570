package store

import "errors"

// ErrNoCredential is returned by [CredentialStore.Read] when no session
// token is persisted. Callers classify it with errors.Is; it is an
// expected outcome on a fresh install or after logout, not a failure.
var ErrNoCredential = errors.New("no credential stored")
