// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvalidAddress       = errors.New("invalid backend address")
)

// TransferError is returned when the backend answers with a non-2xx status.
// Message holds the server-provided "error" field, or a generic fallback.
type TransferError struct {
	StatusCode int
	Message    string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
