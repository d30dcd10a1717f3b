// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the submission workflow of the file encryptor
// client: input validation, transfer to the encryption backend and saving
// of the returned file.
package service

import (
	"context"

	"github.com/MKhiriev/go-file-encryptor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SubmissionService runs one submission end to end.
type SubmissionService interface {
	// Submit validates the file at path and key, sends them to the endpoint
	// of op and saves the processed file to the download directory.
	//
	// Errors are one of: a *validators.ValidationError (nothing was sent),
	// an *adapter.TransferError (the backend rejected the file),
	// [ErrSubmissionInFlight], or an unexpected wrapped error.
	Submit(ctx context.Context, op models.Operation, path, key string) (models.SubmissionResult, error)

	// Prepare stats the file at path and validates it together with key.
	// It does not touch the network, so front-ends call it synchronously
	// and show a *validators.ValidationError before any loading indicator.
	Prepare(ctx context.Context, op models.Operation, path, key string) (models.SubmissionRequest, error)

	// Execute sends a prepared request and saves the processed file. Only
	// one Execute runs at a time; a concurrent call fails with
	// [ErrSubmissionInFlight].
	Execute(ctx context.Context, req models.SubmissionRequest) (models.SubmissionResult, error)

	// DescribeFile returns name and size of the file at path for display.
	// A blank path yields the zero [models.FileInfo].
	DescribeFile(path string) (models.FileInfo, error)
}

// AppInfoService exposes build metadata to the front-ends.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// RequestIDGenerator issues submission request ids.
type RequestIDGenerator interface {
	Generate() string
}
