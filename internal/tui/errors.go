// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-file-encryptor/internal/adapter"
	"github.com/MKhiriev/go-file-encryptor/internal/app"
	"github.com/MKhiriev/go-file-encryptor/internal/service"
	"github.com/MKhiriev/go-file-encryptor/internal/validators"
)

var ErrUserQuit = errors.New("user quit")

// humanizeServerUnavailableError returns the notification text for err.
// Validation and server errors keep their own message; low-level network
// failures become app.MsgServerUnavailable.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var tErr *adapter.TransferError
	var vErr *validators.ValidationError
	if errors.As(err, &tErr) || errors.As(err, &vErr) || errors.Is(err, service.ErrSubmissionInFlight) {
		return service.NotificationMessage(err)
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return app.MsgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return service.NotificationMessage(err)
}
