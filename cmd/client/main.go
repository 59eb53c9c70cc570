package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daystar-app/daystar-client/internal/adapter"
	"github.com/daystar-app/daystar-client/internal/client"
	"github.com/daystar-app/daystar-client/internal/config"
	"github.com/daystar-app/daystar-client/internal/crypto"
	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/internal/oauth"
	"github.com/daystar-app/daystar-client/internal/service"
	"github.com/daystar-app/daystar-client/internal/store"
	"github.com/daystar-app/daystar-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("daystar-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storageDir, err := resolveStorageDir(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve storage dir")
	}

	creds, err := store.NewFileCredentialStore(storageDir, crypto.NewKeychainService())
	if err != nil {
		log.Fatal().Err(err).Msg("create credential store")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL:        cfg.Server.BaseURL,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, creds, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, creds, log)

	google := oauth.NewGoogleAuthenticator(oauth.GoogleConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectPort: cfg.OAuth.RedirectPort,
	}, log.GetChildLogger())

	ui := tui.New(services, google, log.GetChildLogger())

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// resolveStorageDir falls back to a per-user directory under the OS
// config dir when none is configured.
func resolveStorageDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "daystar"), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
