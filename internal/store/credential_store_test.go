package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daystar-app/daystar-client/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (CredentialStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileCredentialStore(dir, crypto.NewKeychainService())
	require.NoError(t, err)
	return s, dir
}

func TestCredentialStore_SaveReadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "token-one"))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-one", got)
}

func TestCredentialStore_SaveOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "token-one"))
	require.NoError(t, s.Save(ctx, "token-two"))

	got, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-two", got)
}

func TestCredentialStore_ReadEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Read(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestCredentialStore_ClearThenRead(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "token"))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Read(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestCredentialStore_ClearIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
}

func TestCredentialStore_TokenNotStoredInPlaintext(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	const token = "very-recognisable-session-token"
	require.NoError(t, s.Save(ctx, token))

	raw, err := os.ReadFile(filepath.Join(dir, credentialFileName))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), token), "credential file must not contain the plaintext token")
}

func TestCredentialStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	keychain := crypto.NewKeychainService()
	ctx := context.Background()

	s1, err := NewFileCredentialStore(dir, keychain)
	require.NoError(t, err)
	require.NoError(t, s1.Save(ctx, "persisted-token"))

	// A new store over the same dir must derive the same storage key
	// from the persisted keyring and decrypt the token.
	s2, err := NewFileCredentialStore(dir, keychain)
	require.NoError(t, err)

	got, err := s2.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", got)
}
