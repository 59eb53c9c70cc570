package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/daystar-app/daystar-client/internal/crypto"
)

const (
	keyringFileName    = "keyring.json"
	credentialFileName = "credential"
)

// keyringFile is the persisted key material from which the at-rest
// encryption key is derived. It never contains the storage key itself.
type keyringFile struct {
	DeviceSecret string `json:"device_secret"`
	Salt         string `json:"salt"`
}

// fileCredentialStore is the file-backed implementation of
// [CredentialStore]. The token is sealed by the keychain before it
// touches the filesystem; both files live under dir with owner-only
// permissions.
type fileCredentialStore struct {
	dir      string
	keychain crypto.KeychainService

	mu  sync.Mutex
	key []byte
}

// NewFileCredentialStore constructs a [CredentialStore] rooted at dir.
// On first use it generates the per-install device secret and salt and
// writes them to the keyring file; afterwards it derives the storage key
// from the persisted material. Returns an error if dir cannot be created
// or the keyring cannot be read or written.
func NewFileCredentialStore(dir string, keychain crypto.KeychainService) (CredentialStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("empty credential store dir")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create credential store dir: %w", err)
	}

	s := &fileCredentialStore{dir: dir, keychain: keychain}
	key, err := s.loadOrCreateKey()
	if err != nil {
		return nil, err
	}
	s.key = key

	return s, nil
}

func (s *fileCredentialStore) loadOrCreateKey() ([]byte, error) {
	path := filepath.Join(s.dir, keyringFileName)

	data, err := os.ReadFile(path)
	if err == nil {
		var kr keyringFile
		if err = json.Unmarshal(data, &kr); err != nil {
			return nil, fmt.Errorf("decode keyring file: %w", err)
		}
		secret, err := base64.StdEncoding.DecodeString(kr.DeviceSecret)
		if err != nil {
			return nil, fmt.Errorf("decode device secret: %w", err)
		}
		salt, err := base64.StdEncoding.DecodeString(kr.Salt)
		if err != nil {
			return nil, fmt.Errorf("decode salt: %w", err)
		}
		return s.keychain.DeriveStorageKey(secret, salt), nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read keyring file: %w", err)
	}

	secret, err := s.keychain.GenerateDeviceSecret()
	if err != nil {
		return nil, fmt.Errorf("generate device secret: %w", err)
	}
	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	kr := keyringFile{
		DeviceSecret: base64.StdEncoding.EncodeToString(secret),
		Salt:         base64.StdEncoding.EncodeToString(salt),
	}
	payload, err := json.Marshal(kr)
	if err != nil {
		return nil, fmt.Errorf("encode keyring file: %w", err)
	}
	if err = os.WriteFile(path, payload, 0600); err != nil {
		return nil, fmt.Errorf("write keyring file: %w", err)
	}

	return s.keychain.DeriveStorageKey(secret, salt), nil
}

// Save implements [CredentialStore]. It seals token with the storage key
// and overwrites the credential file.
func (s *fileCredentialStore) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := s.keychain.Seal([]byte(token), s.key)
	if err != nil {
		return fmt.Errorf("seal credential: %w", err)
	}

	path := filepath.Join(s.dir, credentialFileName)
	if err = os.WriteFile(path, []byte(sealed), 0600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}

	return nil
}

// Read implements [CredentialStore]. It returns [ErrNoCredential] when
// the credential file does not exist; any other failure (including an
// undecryptable blob) is surfaced as-is.
func (s *fileCredentialStore) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, credentialFileName)
	sealed, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCredential
		}
		return "", fmt.Errorf("read credential file: %w", err)
	}

	token, err := s.keychain.Open(string(sealed), s.key)
	if err != nil {
		return "", fmt.Errorf("open credential: %w", err)
	}
	if len(token) == 0 {
		return "", ErrNoCredential
	}

	return string(token), nil
}

// Clear implements [CredentialStore]. Removing an already-absent
// credential is a no-op.
func (s *fileCredentialStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, credentialFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}

	return nil
}
