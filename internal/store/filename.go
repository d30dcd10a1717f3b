// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-file-encryptor/internal/app"
)

const maxDuplicates = 1000

// sanitizeFilename reduces a server-suggested name to a single safe path
// element.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\x00", "")
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimSpace(filepath.Base(name))

	switch name {
	case "", ".", "..", "/":
		return app.DefaultFilename
	}

	return name
}

// numberedFilename returns name with " (n)" inserted before the extension:
// "report.enc" becomes "report (2).enc".
func numberedFilename(name string, n int) string {
	if n == 0 {
		return name
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		return fmt.Sprintf("%s (%d)", name, n)
	}

	return fmt.Sprintf("%s (%d)%s", stem, n, ext)
}
