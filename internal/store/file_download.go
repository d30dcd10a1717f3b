// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-file-encryptor/internal/config"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
)

const tempFilePattern = ".filecrypt-*.part"

// fileDownloadStorage is the filesystem implementation of [DownloadStorage].
// Data is written to a hidden temporary file in the download directory and
// linked into place once the copy completes, so a visible file is always
// complete.
type fileDownloadStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileDownloadStorage constructs a [DownloadStorage] rooted at
// cfg.DownloadDir, creating the directory if needed.
func NewFileDownloadStorage(cfg config.Storage, logger *logger.Logger) (DownloadStorage, error) {
	if err := os.MkdirAll(cfg.DownloadDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingDownloadDir, err)
	}

	return &fileDownloadStorage{dir: cfg.DownloadDir, logger: logger}, nil
}

// Save implements [DownloadStorage]. The copy stops early when ctx is
// cancelled.
func (s *fileDownloadStorage) Save(ctx context.Context, name string, r io.Reader) (path string, written int64, err error) {
	tmp, err := os.CreateTemp(s.dir, tempFilePattern)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrCreatingTempFile, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	written, err = io.Copy(tmp, &contextReader{ctx: ctx, r: r})
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	log := logger.FromContext(ctx, s.logger)

	path, err = s.placeFile(log, tmpPath, sanitizeFilename(name))
	if err != nil {
		return "", 0, err
	}

	log.Debug().
		Str("path", path).
		Int64("size", written).
		Msg("download saved")

	return path, written, nil
}

// placeFile hard-links tmpPath to the first free numbered variant of name
// and removes tmpPath. Link fails on an existing name, so a file appearing
// between attempts is never overwritten.
func (s *fileDownloadStorage) placeFile(log *logger.Logger, tmpPath, name string) (string, error) {
	for n := 0; n < maxDuplicates; n++ {
		candidate := filepath.Join(s.dir, numberedFilename(name, n))

		err := os.Link(tmpPath, candidate)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
		}

		if err = os.Remove(tmpPath); err != nil {
			log.Warn().Err(err).Str("path", tmpPath).Msg("removing temp file failed")
		}
		return candidate, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoFreeFilename, name)
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
