// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-file-encryptor/internal/adapter"
	"github.com/MKhiriev/go-file-encryptor/internal/app"
	"github.com/MKhiriev/go-file-encryptor/internal/validators"
	"github.com/MKhiriev/go-file-encryptor/models"
)

// NotificationMessage maps a Submit error to the text shown to the user.
// Validation and server errors carry their own message; any other error
// shows its text, or app.MsgGenericError when that is blank.
func NotificationMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrSubmissionInFlight) {
		return app.MsgSubmissionInFlight
	}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}

	var tErr *adapter.TransferError
	if errors.As(err, &tErr) {
		return tErr.Message
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}

	return app.MsgGenericError
}

// SuccessMessage returns the text shown after a successful submission,
// worded from the operation: "File encrypted successfully!".
func SuccessMessage(result models.SubmissionResult) string {
	return fmt.Sprintf(app.MsgSuccessFormat, result.Operation.PastTense())
}
