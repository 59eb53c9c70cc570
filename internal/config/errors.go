package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid API endpoint settings
	// (for example, a missing or relative base URL, or a zero timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidOAuthConfigs indicates invalid Google sign-in settings
	// (for example, a secret configured without a client ID).
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
)
