// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-file-encryptor/models"

type submissionDoneMsg struct {
	result models.SubmissionResult
	err    error
}

type dismissNotificationMsg struct {
	seq uint64
}

type copiedMsg struct {
	err error
}
