// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] can be used to
// build the transfer adapter and the download storage.
func (cfg *StructuredConfig) validate() error {
	a := cfg.Adapter
	if strings.TrimSpace(a.HTTPAddress) == "" || a.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(a.EncryptPath, "/") || !strings.HasPrefix(a.DecryptPath, "/") {
		return ErrInvalidEndpointConfigs
	}

	if strings.TrimSpace(a.FileField) == "" || strings.TrimSpace(a.KeyField) == "" {
		return ErrInvalidFormFieldConfigs
	}

	if strings.TrimSpace(cfg.Storage.DownloadDir) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
