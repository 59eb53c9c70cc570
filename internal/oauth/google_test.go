package oauth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn_UnconfiguredClientID(t *testing.T) {
	auth := NewGoogleAuthenticator(GoogleConfig{}, logger.Nop())

	_, err := auth.SignIn(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRedirectHandler_DeliversCode(t *testing.T) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	handler := redirectHandler("state123", codeCh, errCh)

	r := httptest.NewRequest("GET", "/?code=auth-code&state=state123", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "auth-code", <-codeCh)
}

func TestRedirectHandler_StateMismatchRejected(t *testing.T) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	handler := redirectHandler("state123", codeCh, errCh)

	r := httptest.NewRequest("GET", "/?code=auth-code&state=forged", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	assert.Equal(t, 400, w.Code)
	require.Len(t, errCh, 1)
	assert.Empty(t, codeCh)
}

func TestRedirectHandler_RepeatRedirectDoesNotBlock(t *testing.T) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	handler := redirectHandler("state123", codeCh, errCh)

	// The browser can replay the redirect URL (reload, restored tab).
	// Every hit must return immediately; only the first code counts.
	for range 3 {
		r := httptest.NewRequest("GET", "/?code=auth-code&state=state123", nil)
		w := httptest.NewRecorder()
		handler(w, r)
		require.Equal(t, 200, w.Code)
	}

	assert.Equal(t, "auth-code", <-codeCh)
	assert.Empty(t, codeCh)
}

func TestRedirectHandler_ProviderErrorPropagated(t *testing.T) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	handler := redirectHandler("state123", codeCh, errCh)

	r := httptest.NewRequest("GET", "/?error=access_denied&error_description=user+cancelled", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	assert.Equal(t, 400, w.Code)
	err := <-errCh
	assert.Contains(t, err.Error(), "access_denied")
}

func TestRandomString_UnpredictableAndURLSafe(t *testing.T) {
	a := randomString(32)
	b := randomString(32)

	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
	assert.NotContains(t, a, "=")
}

func TestCodeChallenge_KnownVector(t *testing.T) {
	// RFC 7636 appendix B
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", codeChallenge(verifier))
}
