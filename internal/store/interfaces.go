// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists files returned by the encryption backend on the
// local filesystem.
package store

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/download_storage_mock.go -package=mock

// DownloadStorage writes processed files into the download directory.
type DownloadStorage interface {
	// Save copies r into a file named after name inside the download
	// directory and returns the final path and the number of bytes written.
	//
	// name is reduced to its base element; an existing file is never
	// overwritten, a numbered suffix is appended instead. Partially written
	// data is removed on failure.
	Save(ctx context.Context, name string, r io.Reader) (string, int64, error)
}
