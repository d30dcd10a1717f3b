// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-file-encryptor/internal/adapter"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/internal/store"
	"github.com/MKhiriev/go-file-encryptor/internal/utils"
	"github.com/MKhiriev/go-file-encryptor/internal/validators"
	"github.com/MKhiriev/go-file-encryptor/models"
)

// ClientServices groups the services used by the TUI and the headless
// commands.
type ClientServices struct {
	SubmissionService SubmissionService
	AppInfoService    AppInfoService
}

func NewClientServices(
	transferAdapter adapter.TransferAdapter,
	storages *store.Storages,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &ClientServices{
		SubmissionService: NewSubmissionService(
			transferAdapter,
			storages.Downloads,
			validators.NewSubmissionValidator(),
			utils.NewRequestIDGenerator(),
			logger,
		),
		AppInfoService: appInfo,
	}, nil
}
