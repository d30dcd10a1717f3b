// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-encryptor/internal/adapter"
	"github.com/MKhiriev/go-file-encryptor/internal/config"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/internal/service"
	"github.com/MKhiriev/go-file-encryptor/internal/store"
	"github.com/MKhiriev/go-file-encryptor/internal/tui"
	"github.com/MKhiriev/go-file-encryptor/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are nil")
	}
	if ui == nil {
		return nil, errors.New("ui is nil")
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// NewServices builds the transfer adapter, the download storage and the
// client services from cfg.
func NewServices(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*service.ClientServices, error) {
	transferAdapter, err := adapter.NewHTTPTransferAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create transfer adapter: %w", err)
	}

	storages, err := store.NewStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	services, err := service.NewClientServices(transferAdapter, storages, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return services, nil
}

// Run blocks until the UI exits. Quitting from the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("version", a.services.AppInfoService.GetAppVersion(ctx)).
		Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped by user")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		a.logger.Err(err).Msg("ui stopped with error")
		return fmt.Errorf("run ui: %w", err)
	}
}
