// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers all configuration flags on fs and returns the
// [StructuredConfig] they write into. The returned value is filled once fs
// has been parsed (for cobra commands: before RunE is called).
//
// Flags:
//
//	-a/--address backend base URL, e.g. http://localhost:8080
//	--encrypt-path encrypt endpoint path
//	--decrypt-path decrypt endpoint path
//	--file-field multipart field name for the file
//	--key-field multipart field name for the secret key
//	--request-timeout request timeout (e.g., "30s", "1m"), 0 disables it
//	-o/--download-dir directory for returned files
//	-c/--config json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "Backend base URL")
	fs.StringVar(&cfg.Adapter.EncryptPath, "encrypt-path", "", "Encrypt endpoint path")
	fs.StringVar(&cfg.Adapter.DecryptPath, "decrypt-path", "", "Decrypt endpoint path")
	fs.StringVar(&cfg.Adapter.FileField, "file-field", "", "Multipart field name for the file")
	fs.StringVar(&cfg.Adapter.KeyField, "key-field", "", "Multipart field name for the secret key")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m); 0 waits forever")
	fs.StringVarP(&cfg.Storage.DownloadDir, "download-dir", "o", "", "Directory for returned files")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
