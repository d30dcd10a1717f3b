// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrCreatingDownloadDir is returned when the download directory does not
	// exist and cannot be created.
	ErrCreatingDownloadDir = errors.New("failed to create download directory")

	// ErrCreatingTempFile is returned when no temporary file can be opened in
	// the download directory.
	ErrCreatingTempFile = errors.New("failed to create temporary file")

	// ErrWritingFile is returned when copying the response body to disk
	// fails.
	ErrWritingFile = errors.New("failed to write file")

	// ErrNoFreeFilename is returned when every numbered variant of a filename
	// is already taken.
	ErrNoFreeFilename = errors.New("no free filename")
)
