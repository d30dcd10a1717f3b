// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-file-encryptor/internal/config"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
)

// Storages groups the client storage backends into a single value that can
// be passed to the service layer.
type Storages struct {
	// Downloads receives the files returned by the backend.
	Downloads DownloadStorage
}

// NewStorages initialises the storage layer from cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("download_dir", cfg.DownloadDir).Msg("creating new storages...")

	downloads, err := NewFileDownloadStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("download storage: %w", err)
	}

	return &Storages{Downloads: downloads}, nil
}
