// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Julien-Turcotte/myMatrix/internal/logger"
	"github.com/Julien-Turcotte/myMatrix/internal/service"
	"github.com/Julien-Turcotte/myMatrix/internal/tui"
)

// App owns the process lifecycle: it runs the UI until the user quits or
// the process is signalled, then closes the sync engine.
type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.Engine == nil {
		return nil, errors.New("client: no sync engine")
	}
	if ui == nil {
		return nil, errors.New("client: no ui")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.services.Engine.Close()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)

	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped by user")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Err(ctx.Err()).Msg("client interrupted")
		return nil
	}

	return fmt.Errorf("run ui: %w", err)
}
