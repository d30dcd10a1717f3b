// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFileSelected = errors.New("no file selected")
	ErrFileTooLarge   = errors.New("file too large")
	ErrKeyTooShort    = errors.New("key too short")
	ErrInvalidOp      = errors.New("invalid operation")
)

// ValidationError is returned for input that must never reach the network.
// Err is one of the sentinel errors above; Message is the text shown to the
// user.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, message string) *ValidationError {
	return &ValidationError{Err: err, Message: message}
}
