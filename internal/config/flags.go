package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s/-server API base URL (e.g. "https://api.daystar.app")
//	-request-timeout outbound request timeout (e.g. "15s", "1m")
//	-storage-dir directory for the encrypted credential store
//	-google-client-id OAuth 2.0 client ID for Google sign-in
//	-google-client-secret OAuth 2.0 client secret
//	-redirect-port loopback port for the OAuth redirect listener
//	-refresh-interval background habit refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *ClientConfig {
	var baseURL string
	var requestTimeout time.Duration
	var storageDir string
	var googleClientID string
	var googleClientSecret string
	var redirectPort int
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "s", "", "API base URL")
	flag.StringVar(&baseURL, "server", "", "API base URL (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&storageDir, "storage-dir", "", "Credential store directory")
	flag.StringVar(&googleClientID, "google-client-id", "", "Google OAuth client ID")
	flag.StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth client secret")
	flag.IntVar(&redirectPort, "redirect-port", 0, "OAuth redirect loopback port (0 = ephemeral)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Habit refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ClientConfig{
		Server: Server{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Dir: storageDir,
		},
		OAuth: OAuth{
			GoogleClientID:     googleClientID,
			GoogleClientSecret: googleClientSecret,
			RedirectPort:       redirectPort,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
