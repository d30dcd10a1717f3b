// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-file-encryptor/internal/app"
	"github.com/MKhiriev/go-file-encryptor/models"
)

const (
	// MaxUploadSizeMB is the upload limit in megabytes.
	MaxUploadSizeMB = 10
	// MaxUploadSize is the upload limit in bytes (10 MiB).
	MaxUploadSize int64 = MaxUploadSizeMB * 1024 * 1024
	// MinKeyLength is the minimum secret key length in characters.
	MinKeyLength = 8
)

const (
	FieldOperation = "operation"
	FieldFile      = "file"
	FieldFileSize  = "file_size"
	FieldKey       = "key"
)

// defaultSubmissionFields is the rule order: the first failing rule wins.
var defaultSubmissionFields = []string{FieldFile, FieldFileSize, FieldKey}

type SubmissionValidator struct {
}

func NewSubmissionValidator() Validator {
	return &SubmissionValidator{}
}

func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmissionRequest:
		return v.validateSubmission(ctx, value, fields...)
	case *models.SubmissionRequest:
		return v.validateSubmission(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SubmissionValidator) validateSubmission(_ context.Context, req models.SubmissionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultSubmissionFields
	}

	for _, f := range fields {
		switch f {
		case FieldOperation:
			if !req.Operation.IsValid() {
				return ErrInvalidOp
			}
		case FieldFile:
			if !req.File.Selected() {
				return newValidationError(ErrNoFileSelected, app.MsgNoFileSelected)
			}
		case FieldFileSize:
			if req.File.Size > MaxUploadSize {
				return newValidationError(ErrFileTooLarge, fmt.Sprintf(app.MsgFileTooLargeFormat, MaxUploadSizeMB))
			}
		case FieldKey:
			if utf8.RuneCountInString(req.Key) < MinKeyLength {
				return newValidationError(ErrKeyTooShort, fmt.Sprintf(app.MsgKeyTooShortFormat, MinKeyLength))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
