// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal chat interface of myMatrix, built on
// bubbletea. It renders engine snapshots and turns key presses into engine
// commands; it holds no room state of its own.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/Julien-Turcotte/myMatrix/internal/logger"
	"github.com/Julien-Turcotte/myMatrix/internal/service"
	"github.com/Julien-Turcotte/myMatrix/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// Options configures the UI.
type Options struct {
	// Defaults prefill the login form. Secrets are ignored.
	Defaults   models.Credentials
	TypingIdle time.Duration
	BuildInfo  models.AppBuildInfo
}

type TUI struct {
	engine service.ClientSyncEngine
	opts   Options
	logger *logger.Logger
}

func New(services *service.ClientServices, opts Options, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Engine == nil {
		return nil, errors.New("tui: no sync engine")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{engine: services.Engine, opts: opts, logger: log}, nil
}

// Run shows the login screen and then the chat until the user quits or
// ctx is cancelled. It returns [ErrUserQuit] when the user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	defaults := t.opts.Defaults
	defaults.Password, defaults.AccessToken = "", ""

	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.engine, defaults),
		pageChat:  NewChatModel(ctx, t.engine, t.opts.TypingIdle),
	}

	root := NewRootModel(t.engine, pages, pageLogin, t.opts.BuildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}

	return nil
}
