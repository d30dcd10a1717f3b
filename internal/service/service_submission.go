// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-file-encryptor/internal/adapter"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/internal/store"
	"github.com/MKhiriev/go-file-encryptor/internal/utils"
	"github.com/MKhiriev/go-file-encryptor/internal/validators"
	"github.com/MKhiriev/go-file-encryptor/models"
)

var submissionFields = []string{
	validators.FieldOperation,
	validators.FieldFile,
	validators.FieldFileSize,
	validators.FieldKey,
}

type submissionService struct {
	transferAdapter adapter.TransferAdapter
	downloads       store.DownloadStorage
	validator       validators.Validator
	ids             RequestIDGenerator

	inFlight atomic.Bool

	logger *logger.Logger
}

func NewSubmissionService(
	transferAdapter adapter.TransferAdapter,
	downloads store.DownloadStorage,
	validator validators.Validator,
	ids RequestIDGenerator,
	logger *logger.Logger,
) SubmissionService {
	return &submissionService{
		transferAdapter: transferAdapter,
		downloads:       downloads,
		validator:       validator,
		ids:             ids,
		logger:          logger,
	}
}

func (s *submissionService) DescribeFile(path string) (models.FileInfo, error) {
	return utils.StatFile(path)
}

// Submit runs Prepare and Execute back to back.
func (s *submissionService) Submit(ctx context.Context, op models.Operation, path, key string) (models.SubmissionResult, error) {
	req, err := s.Prepare(ctx, op, path, key)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	return s.Execute(ctx, req)
}

func (s *submissionService) Prepare(ctx context.Context, op models.Operation, path, key string) (models.SubmissionRequest, error) {
	file, err := utils.StatFile(path)
	if err != nil {
		return models.SubmissionRequest{}, err
	}

	req := models.SubmissionRequest{
		Operation: op,
		File:      file,
		Key:       key,
		RequestID: s.ids.Generate(),
	}

	if err = s.validator.Validate(ctx, req, submissionFields...); err != nil {
		s.logger.ForRequest(req.RequestID).Debug().
			Err(err).
			Str("operation", op.String()).
			Msg("submission rejected by validator")
		return models.SubmissionRequest{}, err
	}

	return req, nil
}

func (s *submissionService) Execute(ctx context.Context, req models.SubmissionRequest) (models.SubmissionResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return models.SubmissionResult{}, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	log := s.logger.ForRequest(req.RequestID)
	ctx = log.WithContext(utils.WithRequestID(ctx, req.RequestID))

	log.Info().
		Str("operation", req.Operation.String()).
		Str("file", req.File.Name).
		Int64("size", req.File.Size).
		Msg("submitting file")

	resp, err := s.transferAdapter.Transfer(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("operation", req.Operation.String()).Msg("transfer failed")
		return models.SubmissionResult{}, err
	}
	defer resp.Body.Close()

	savedPath, size, err := s.downloads.Save(ctx, resp.Filename, resp.Body)
	if err != nil {
		log.Error().Err(err).Str("filename", resp.Filename).Msg("saving processed file failed")
		return models.SubmissionResult{}, fmt.Errorf("save %s: %w", resp.Filename, err)
	}

	log.Info().
		Str("operation", req.Operation.String()).
		Str("saved_path", savedPath).
		Int64("size", size).
		Msg("file processed")

	return models.SubmissionResult{
		Operation: req.Operation,
		Filename:  resp.Filename,
		SavedPath: savedPath,
		Size:      size,
		RequestID: req.RequestID,
	}, nil
}
