// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal front-end: two tabs
// (Encrypt / Decrypt) with a file path and a secret key input, a loading
// spinner while a file is processed and timed notifications.
//
// All presentation state lives in [UIState] and changes only through its
// value-returning methods.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, logger *logger.Logger, opts ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.SubmissionService == nil || services.AppInfoService == nil {
		return nil, errors.New("tui: services are not initialised")
	}

	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}

	return &TUI{services: services, logger: logger, programOptions: opts}, nil
}

// Run blocks until the user quits. Cancelling ctx stops the program and any
// submission in flight. Quitting with ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(newAppModel(ctx, t.services), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
