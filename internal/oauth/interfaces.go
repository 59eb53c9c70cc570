// Package oauth implements Google sign-in for the client. It runs the
// OAuth 2.0 authorization-code flow with PKCE against Google's OIDC
// provider, receiving the redirect on a loopback listener, and hands the
// verified Google ID token to the caller. The daystar API exchanges that
// ID token for its own session token.
package oauth

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/google_authenticator_mock.go -package=mock

// GoogleAuthenticator obtains a Google ID token by driving the user
// through the browser consent flow.
type GoogleAuthenticator interface {
	// SignIn blocks until the browser flow completes, the context is
	// cancelled, or the flow fails. It returns the raw ID token issued
	// by Google for the configured client.
	SignIn(ctx context.Context) (string, error)
}
