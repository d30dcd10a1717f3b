// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-file-encryptor/internal/config"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/internal/utils"
	"github.com/MKhiriev/go-file-encryptor/models"
)

type httpTransferAdapter struct {
	client *utils.HTTPClient

	encryptPath string
	decryptPath string
	fileField   string
	keyField    string

	logger *logger.Logger
}

// NewHTTPTransferAdapter constructs the HTTP implementation of
// [TransferAdapter]. It normalises adapterCfg.HTTPAddress, binds the
// underlying resty client to it and applies the optional request timeout.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed.
func NewHTTPTransferAdapter(adapterCfg config.Adapter, logger *logger.Logger) (TransferAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpTransferAdapter{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		encryptPath: adapterCfg.EncryptPath,
		decryptPath: adapterCfg.DecryptPath,
		fileField:   adapterCfg.FileField,
		keyField:    adapterCfg.KeyField,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Transfer implements [TransferAdapter]. The file is streamed from disk as
// the multipart field named by the adapter config; the key travels as a
// plain form field. The response body is not buffered.
func (h *httpTransferAdapter) Transfer(ctx context.Context, req models.SubmissionRequest) (models.TransferResponse, error) {
	path, err := h.endpoint(req.Operation)
	if err != nil {
		return models.TransferResponse{}, err
	}

	file, err := os.Open(req.File.Path)
	if err != nil {
		return models.TransferResponse{}, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	name := req.File.Name
	if name == "" {
		name = filepath.Base(req.File.Path)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = req.RequestID
	}

	r := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetFileReader(h.fileField, name, file).
		SetMultipartFormData(map[string]string{h.keyField: req.Key})
	if requestID != "" {
		r.SetHeader(utils.RequestIDHeader, requestID)
	}

	logger.FromContext(ctx, h.logger).Debug().
		Str("operation", req.Operation.String()).
		Str("path", path).
		Msg("sending transfer request")

	resp, err := r.Post(path)
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			resp.RawBody().Close()
		}
		return models.TransferResponse{}, fmt.Errorf("%s request: %w", req.Operation, err)
	}

	body := resp.RawBody()
	if err = mapHTTPError(resp.StatusCode(), body); err != nil {
		body.Close()
		return models.TransferResponse{}, err
	}

	var contentLength int64 = -1
	if resp.RawResponse != nil {
		contentLength = resp.RawResponse.ContentLength
	}

	return models.TransferResponse{
		Filename:      parseFilename(resp.Header().Get("Content-Disposition")),
		Body:          body,
		ContentLength: contentLength,
	}, nil
}

func (h *httpTransferAdapter) endpoint(op models.Operation) (string, error) {
	switch op {
	case models.Encrypt:
		return h.encryptPath, nil
	case models.Decrypt:
		return h.decryptPath, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedOperation, int(op))
	}
}
