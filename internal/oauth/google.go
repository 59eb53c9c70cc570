package oauth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/daystar-app/daystar-client/internal/logger"
)

const googleIssuer = "https://accounts.google.com"

// ErrNotConfigured is returned by SignIn when no Google client ID was
// configured.
var ErrNotConfigured = errors.New("google sign-in is not configured")

// GoogleConfig carries the OAuth client settings for Google sign-in.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string

	// RedirectPort fixes the loopback port for the redirect listener.
	// Zero lets the OS pick one; Google allows any loopback port for
	// desktop clients.
	RedirectPort int
}

type googleAuthenticator struct {
	cfg    GoogleConfig
	logger *logger.Logger

	// openURL launches the system browser; swapped in tests.
	openURL func(url string) error
}

// NewGoogleAuthenticator builds the [GoogleAuthenticator]. Construction
// never touches the network; provider discovery happens inside SignIn so
// an offline start does not fail.
func NewGoogleAuthenticator(cfg GoogleConfig, log *logger.Logger) GoogleAuthenticator {
	return &googleAuthenticator{
		cfg:     cfg,
		logger:  log,
		openURL: openBrowser,
	}
}

// SignIn implements [GoogleAuthenticator].
func (g *googleAuthenticator) SignIn(ctx context.Context) (string, error) {
	if g.cfg.ClientID == "" {
		return "", ErrNotConfigured
	}

	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return "", fmt.Errorf("discover google oidc provider: %w", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(g.cfg.RedirectPort))
	if err != nil {
		return "", fmt.Errorf("open redirect listener: %w", err)
	}
	defer listener.Close()

	oauthCfg := &oauth2.Config{
		ClientID:     g.cfg.ClientID,
		ClientSecret: g.cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		RedirectURL:  "http://" + listener.Addr().String(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	state := randomString(32)
	nonce := randomString(32)
	verifier := randomString(48)

	authURL := oauthCfg.AuthCodeURL(state,
		oidc.Nonce(nonce),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	server := &http.Server{Handler: redirectHandler(state, codeCh, errCh)}
	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			select {
			case errCh <- serveErr:
			default:
			}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	g.logger.Info().Str("url", authURL).Msg("opening browser for google sign-in")
	if err := g.openURL(authURL); err != nil {
		g.logger.Warn().Err(err).Msg("could not open browser, visit the sign-in url manually")
	}

	var code string
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errCh:
		return "", err
	case code = <-codeCh:
	}

	token, err := oauthCfg.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", verifier),
	)
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", errors.New("no id token in google response")
	}

	idToken, err := provider.Verifier(&oidc.Config{ClientID: g.cfg.ClientID}).Verify(ctx, rawIDToken)
	if err != nil {
		return "", fmt.Errorf("verify google id token: %w", err)
	}

	var claims struct {
		Nonce string `json:"nonce"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return "", fmt.Errorf("extract id token claims: %w", err)
	}
	if claims.Nonce != nonce {
		return "", errors.New("id token nonce mismatch")
	}

	return rawIDToken, nil
}

// redirectHandler accepts the OAuth redirect, validates the state
// parameter, and pushes the authorization code to codeCh. Only the first
// outcome is delivered; a reloaded redirect URL gets a response but its
// send is dropped so the handler never blocks.
func redirectHandler(state string, codeCh chan<- string, errCh chan<- error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if errParam := r.FormValue("error"); errParam != "" {
			http.Error(w, "Sign-in failed. You can close this window.", http.StatusBadRequest)
			select {
			case errCh <- fmt.Errorf("authorization failed: %s - %s", errParam, r.FormValue("error_description")):
			default:
			}
			return
		}

		code := r.FormValue("code")
		if code == "" || r.FormValue("state") != state {
			http.Error(w, "Invalid sign-in response.", http.StatusBadRequest)
			select {
			case errCh <- errors.New("missing code or state mismatch in redirect"):
			default:
			}
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>Signed in. You can close this window and return to daystar.</body></html>"))
		select {
		case codeCh <- code:
		default:
		}
	}
}

// randomString creates a random base64url string
func randomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// codeChallenge creates a PKCE code challenge from a verifier
func codeChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
