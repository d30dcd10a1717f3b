// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the file
// encryptor client. It is populated by merging command-line flags,
// environment variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address, endpoint paths and multipart field
	// names used by the transfer adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the settings of the local download storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the outbound transport to the encryption
// backend.
type Adapter struct {
	// HTTPAddress is the backend base URL. A missing scheme defaults to
	// "http://" (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// EncryptPath is the endpoint path accepting encryption requests.
	// Env: ADAPTER_ENCRYPT_PATH
	EncryptPath string `env:"ENCRYPT_PATH"`

	// DecryptPath is the endpoint path accepting decryption requests.
	// Env: ADAPTER_DECRYPT_PATH
	DecryptPath string `env:"DECRYPT_PATH"`

	// FileField is the multipart field name carrying the file.
	// Env: ADAPTER_FILE_FIELD
	FileField string `env:"FILE_FIELD"`

	// KeyField is the multipart field name carrying the secret key.
	// Env: ADAPTER_KEY_FIELD
	KeyField string `env:"KEY_FIELD"`

	// RequestTimeout bounds a single transfer. Zero means no timeout: a slow
	// backend keeps the loading indicator visible until it answers.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the settings of the download storage.
type Storage struct {
	// DownloadDir is the directory returned files are written to.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// defaultConfig returns the values used for every field no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: "http://localhost:8080",
			EncryptPath: "/encrypt",
			DecryptPath: "/decrypt",
			FileField:   "file",
			KeyField:    "secretKey",
		},
		Storage: Storage{
			DownloadDir: ".",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration.
// flagCfg holds the values parsed from the command line (see [BindFlags]);
// it may be nil.
//
// Sources are merged with mergo, which only fills fields that are still
// zero, so the first source that sets a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
