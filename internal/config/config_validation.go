// SPDX-License-Identifier: Apache-2.0

package config

import "net/url"

// validate checks that the final merged [ClientConfig] satisfies all
// startup invariants.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Server.BaseURL == "" {
		return ErrInvalidServerConfigs
	}
	if u, err := url.Parse(cfg.Server.BaseURL); err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.OAuth.RedirectPort < 0 || cfg.OAuth.RedirectPort > 65535 {
		return ErrInvalidOAuthConfigs
	}
	// A secret without an ID can never complete the code exchange.
	if cfg.OAuth.GoogleClientID == "" && cfg.OAuth.GoogleClientSecret != "" {
		return ErrInvalidOAuthConfigs
	}

	return nil
}
