package client

import (
	"context"
	"fmt"

	"github.com/daystar-app/daystar-client/internal/config"
	"github.com/daystar-app/daystar-client/internal/logger"
	"github.com/daystar-app/daystar-client/internal/service"
	"github.com/daystar-app/daystar-client/internal/tui"
)

// App runs the daystar client: it settles the session from the stored
// credential first, then keeps the habit view fresh in the background
// while the UI is open.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.Workers, log *logger.Logger) (*App, error) {
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   log,
	}, nil
}

// Run implements [Client]. The session is bootstrapped before the UI
// starts so the first frame already knows whether the user is signed in.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.services.Session.Bootstrap(ctx); err != nil {
		// The session is settled unauthenticated either way; starting
		// signed out beats refusing to start.
		a.logger.Error().Err(err).Msg("session bootstrap failed, starting signed out")
	}

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
