// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-file-encryptor/models"
)

// ErrNotRegularFile is returned by StatFile for directories and other
// non-regular paths.
var ErrNotRegularFile = errors.New("not a regular file")

// StatFile describes the file at path. A blank path yields the zero
// FileInfo, meaning "no file selected". A leading "~" is expanded to the
// user's home directory.
func StatFile(path string) (models.FileInfo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return models.FileInfo{}, nil
	}

	path = expandHome(path)
	info, err := os.Stat(path)
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return models.FileInfo{}, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	return models.FileInfo{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
	}, nil
}

// FormatSize renders a byte count for display (e.g. "1.5 MB").
func FormatSize(size int64) string {
	const mb = 1024 * 1024
	const kb = 1024

	if size >= mb {
		return fmt.Sprintf("%.1f MB", float64(size)/mb)
	}
	if size >= kb {
		return fmt.Sprintf("%.1f KB", float64(size)/kb)
	}
	return fmt.Sprintf("%d B", size)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
