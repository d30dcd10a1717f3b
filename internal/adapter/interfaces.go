// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// external encryption backend.
//
// The primary abstraction is [TransferAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPTransferAdapter]) that submits the file and the
// secret key as multipart form data and streams the processed file back.
//
// Non-2xx responses are mapped to [*TransferError] by mapHTTPError so that
// callers can use [errors.As] to recover the server-provided message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-file-encryptor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transfer_adapter_mock.go -package=mock

// TransferAdapter submits a file to the encryption backend and returns the
// processed file.
type TransferAdapter interface {
	// Transfer POSTs req.File and req.Key to the endpoint of req.Operation.
	//
	// On success the returned [models.TransferResponse] carries the
	// server-suggested filename and an open body that the caller must close.
	// A non-2xx response yields a [*TransferError]; network failures are
	// returned wrapped.
	Transfer(ctx context.Context, req models.SubmissionRequest) (models.TransferResponse, error)
}
