// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the key chain protecting the locally
// persisted session credential.
//
// The credential grants full account access, so it is never written to
// disk in the clear. A per-install random device secret plus a random
// salt are stretched with Argon2id into an AES-256 storage key, and the
// token is sealed with AES-GCM before it reaches the filesystem.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeychainService defines key generation, derivation, and authenticated
// encryption for the credential store.
type KeychainService interface {
	// GenerateDeviceSecret reads 32 random bytes from the OS CSPRNG.
	// The secret is generated once per install and kept on disk with
	// owner-only permissions.
	GenerateDeviceSecret() ([]byte, error)

	// GenerateSalt reads 16 random bytes from the OS CSPRNG for use as
	// the Argon2id salt.
	GenerateSalt() ([]byte, error)

	// DeriveStorageKey derives the 256-bit at-rest encryption key from
	// the device secret and salt using Argon2id. The key exists only in
	// client memory.
	DeriveStorageKey(secret, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-256-GCM and returns a
	// Base64 blob of nonce ‖ ciphertext.
	Seal(plaintext, key []byte) (string, error)

	// Open decrypts a blob produced by Seal. Returns an error if the
	// blob is malformed, the key is wrong, or the ciphertext has been
	// tampered with (authentication-tag mismatch).
	Open(sealedB64 string, key []byte) ([]byte, error)
}
