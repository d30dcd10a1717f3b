// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"regexp"

	"github.com/MKhiriev/go-file-encryptor/internal/app"
)

var filenamePattern = regexp.MustCompile(`filename="(.+)"`)

// parseFilename extracts the quoted filename parameter of a
// Content-Disposition header value, falling back to app.DefaultFilename.
func parseFilename(contentDisposition string) string {
	m := filenamePattern.FindStringSubmatch(contentDisposition)
	if len(m) < 2 || m[1] == "" {
		return app.DefaultFilename
	}

	return m[1]
}
