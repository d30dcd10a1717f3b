// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// FileInfo describes the file picked for a submission.
// The zero value means that no file has been selected.
type FileInfo struct {
	// Path is the local filesystem path the file is read from.
	Path string
	// Name is the base name sent to the backend as the multipart filename.
	Name string
	// Size is the file size in bytes.
	Size int64
}

// Selected reports whether a file has been picked.
func (f FileInfo) Selected() bool {
	return f.Path != ""
}

// SubmissionRequest is created when a form is submitted and discarded once
// the submission settles.
type SubmissionRequest struct {
	Operation Operation
	File      FileInfo
	// Key is the secret key forwarded to the backend as a text form field.
	Key string
	// RequestID correlates client logs with the backend request
	// (sent as the X-Request-ID header).
	RequestID string
}

// TransferResponse is the successful outcome of a transfer.
// The caller owns Body and must close it.
type TransferResponse struct {
	// Filename is the name suggested by the Content-Disposition header,
	// or the default fallback name.
	Filename      string
	Body          io.ReadCloser
	ContentLength int64
}

// SubmissionResult describes a settled, successful submission.
type SubmissionResult struct {
	Operation Operation
	// Filename is the name the backend suggested for the returned file.
	Filename string
	// SavedPath is where the returned file was written.
	SavedPath string
	// Size is the number of bytes written.
	Size      int64
	RequestID string
}
