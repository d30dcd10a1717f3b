// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-file-encryptor/internal/adapter"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/internal/mock"
	"github.com/MKhiriev/go-file-encryptor/internal/utils"
	"github.com/MKhiriev/go-file-encryptor/internal/validators"
	"github.com/MKhiriev/go-file-encryptor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRequestID = "0190c3d2-0000-7000-8000-000000000001"

// ── helpers ──────────────────────────────────────────────────────────────────

func newTestSubmissionSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*submissionService,
	*mock.MockTransferAdapter,
	*mock.MockDownloadStorage,
	*mock.MockRequestIDGenerator,
) {
	t.Helper()
	mockAdapter := mock.NewMockTransferAdapter(ctrl)
	mockStorage := mock.NewMockDownloadStorage(ctrl)
	mockIDs := mock.NewMockRequestIDGenerator(ctrl)

	svc := NewSubmissionService(
		mockAdapter,
		mockStorage,
		validators.NewSubmissionValidator(),
		mockIDs,
		logger.Nop(),
	).(*submissionService)

	return svc, mockAdapter, mockStorage, mockIDs
}

func writeTestFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a", size)), 0o600))
	return path
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

// ── Submit: success ──────────────────────────────────────────────────────────

func TestSubmissionService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockStorage, mockIDs := newTestSubmissionSvc(t, ctrl)
	ctx := context.Background()
	path := writeTestFile(t, "report.pdf", 1024)
	body := &trackingBody{Reader: strings.NewReader("cipher")}

	gomock.InOrder(
		mockIDs.EXPECT().Generate().Return(testRequestID),
		mockAdapter.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, req models.SubmissionRequest) (models.TransferResponse, error) {
				assert.Equal(t, models.Encrypt, req.Operation)
				assert.Equal(t, models.FileInfo{Path: path, Name: "report.pdf", Size: 1024}, req.File)
				assert.Equal(t, "correct horse", req.Key)
				assert.Equal(t, testRequestID, req.RequestID)

				id, ok := utils.GetRequestIDFromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, testRequestID, id)

				return models.TransferResponse{Filename: "report.enc", Body: body, ContentLength: 6}, nil
			},
		),
		mockStorage.EXPECT().Save(gomock.Any(), "report.enc", body).Return("/downloads/report.enc", int64(6), nil),
	)

	result, err := svc.Submit(ctx, models.Encrypt, path, "correct horse")

	require.NoError(t, err)
	assert.Equal(t, models.SubmissionResult{
		Operation: models.Encrypt,
		Filename:  "report.enc",
		SavedPath: "/downloads/report.enc",
		Size:      6,
		RequestID: testRequestID,
	}, result)
	assert.True(t, body.closed, "response body must be closed")
	assert.False(t, svc.inFlight.Load())
}

// ── Submit: validation ───────────────────────────────────────────────────────

func TestSubmissionService_Submit_ValidationNeverTransfers(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		key      string
		sentinel error
		message  string
	}{
		{
			name:     "no file selected",
			path:     func(*testing.T) string { return "" },
			key:      "correct horse",
			sentinel: validators.ErrNoFileSelected,
			message:  "Please select a file",
		},
		{
			name:     "file too large",
			path:     func(t *testing.T) string { return writeTestFile(t, "big.bin", int(validators.MaxUploadSize)+1) },
			key:      "correct horse",
			sentinel: validators.ErrFileTooLarge,
			message:  "File size must be less than 10MB",
		},
		{
			name:     "key too short",
			path:     func(t *testing.T) string { return writeTestFile(t, "a.txt", 1) },
			key:      "1234567",
			sentinel: validators.ErrKeyTooShort,
			message:  "Secret key must be at least 8 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _, mockIDs := newTestSubmissionSvc(t, ctrl)
			mockIDs.EXPECT().Generate().Return(testRequestID)

			_, err := svc.Submit(context.Background(), models.Decrypt, tt.path(t), tt.key)

			require.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.message, NotificationMessage(err))
			assert.False(t, svc.inFlight.Load())
		})
	}
}

func TestSubmissionService_Submit_MissingPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestSubmissionSvc(t, ctrl)

	_, err := svc.Submit(context.Background(), models.Encrypt, filepath.Join(t.TempDir(), "nope"), "correct horse")

	require.ErrorIs(t, err, os.ErrNotExist)
}

// ── Submit: transfer and save failures ───────────────────────────────────────

func TestSubmissionService_Submit_TransferError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockIDs := newTestSubmissionSvc(t, ctrl)
	serverErr := &adapter.TransferError{StatusCode: 400, Message: "bad key"}

	mockIDs.EXPECT().Generate().Return(testRequestID)
	mockAdapter.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(models.TransferResponse{}, serverErr)

	_, err := svc.Submit(context.Background(), models.Decrypt, writeTestFile(t, "a.enc", 10), "correct horse")

	require.Error(t, err)
	assert.Equal(t, "bad key", NotificationMessage(err))
	assert.False(t, svc.inFlight.Load())
}

func TestSubmissionService_Submit_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockStorage, mockIDs := newTestSubmissionSvc(t, ctrl)
	body := &trackingBody{Reader: strings.NewReader("x")}
	diskErr := errors.New("disk full")

	mockIDs.EXPECT().Generate().Return(testRequestID)
	mockAdapter.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		Return(models.TransferResponse{Filename: "a.enc", Body: body}, nil)
	mockStorage.EXPECT().Save(gomock.Any(), "a.enc", body).Return("", int64(0), diskErr)

	_, err := svc.Submit(context.Background(), models.Encrypt, writeTestFile(t, "a", 10), "correct horse")

	require.ErrorIs(t, err, diskErr)
	assert.True(t, body.closed, "response body must be closed on save failure")
	assert.False(t, svc.inFlight.Load())
}

// ── Submit: in-flight guard ──────────────────────────────────────────────────

func TestSubmissionService_Submit_RejectsConcurrentSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockStorage, mockIDs := newTestSubmissionSvc(t, ctrl)
	path := writeTestFile(t, "a.txt", 10)

	entered := make(chan struct{})
	release := make(chan struct{})

	mockIDs.EXPECT().Generate().Return(testRequestID).Times(2)
	mockAdapter.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.SubmissionRequest) (models.TransferResponse, error) {
			close(entered)
			<-release
			return models.TransferResponse{Filename: "a.enc", Body: io.NopCloser(strings.NewReader("x"))}, nil
		},
	)
	mockStorage.EXPECT().Save(gomock.Any(), "a.enc", gomock.Any()).Return("/d/a.enc", int64(1), nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), models.Encrypt, path, "correct horse")
		done <- err
	}()

	<-entered
	_, err := svc.Submit(context.Background(), models.Encrypt, path, "correct horse")
	require.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, "Please wait for the current file to finish", NotificationMessage(err))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, svc.inFlight.Load())
}

// ── Prepare ──────────────────────────────────────────────────────────────────

func TestSubmissionService_Prepare_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockIDs := newTestSubmissionSvc(t, ctrl)
	path := writeTestFile(t, "report.pdf", 2048)
	mockIDs.EXPECT().Generate().Return(testRequestID)

	req, err := svc.Prepare(context.Background(), models.Encrypt, path, "correct horse")

	require.NoError(t, err)
	assert.Equal(t, models.SubmissionRequest{
		Operation: models.Encrypt,
		File:      models.FileInfo{Path: path, Name: "report.pdf", Size: 2048},
		Key:       "correct horse",
		RequestID: testRequestID,
	}, req)
}

func TestSubmissionService_Prepare_RejectsWithoutTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Transfer and Save carry no expectations: any call fails the test.
	svc, _, _, mockIDs := newTestSubmissionSvc(t, ctrl)
	mockIDs.EXPECT().Generate().Return(testRequestID)

	req, err := svc.Prepare(context.Background(), models.Encrypt, "", "short")

	require.ErrorIs(t, err, validators.ErrNoFileSelected)
	assert.Equal(t, models.SubmissionRequest{}, req)
	assert.False(t, svc.inFlight.Load())
}

// ── Execute ──────────────────────────────────────────────────────────────────

func TestSubmissionService_Execute_AttachesRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockStorage, _ := newTestSubmissionSvc(t, ctrl)
	var buf bytes.Buffer
	svc.logger = logger.NewLogger("test", &buf)

	body := io.NopCloser(strings.NewReader("x"))
	mockAdapter.EXPECT().Transfer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req models.SubmissionRequest) (models.TransferResponse, error) {
			id, ok := utils.GetRequestIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, testRequestID, id)

			logger.FromContext(ctx, nil).Info().Msg("from adapter")
			return models.TransferResponse{Filename: "a.enc", Body: body}, nil
		},
	)
	mockStorage.EXPECT().Save(gomock.Any(), "a.enc", body).Return("/d/a.enc", int64(1), nil)

	_, err := svc.Execute(context.Background(), models.SubmissionRequest{
		Operation: models.Encrypt,
		File:      models.FileInfo{Path: "/tmp/a", Name: "a", Size: 1},
		Key:       "correct horse",
		RequestID: testRequestID,
	})

	require.NoError(t, err)
	var adapterLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "from adapter") {
			adapterLine = line
		}
	}
	assert.Contains(t, adapterLine, `"request_id":"`+testRequestID+`"`)
}

// ── DescribeFile ─────────────────────────────────────────────────────────────

func TestSubmissionService_DescribeFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestSubmissionSvc(t, ctrl)
	path := writeTestFile(t, "notes.txt", 42)

	info, err := svc.DescribeFile(path)

	require.NoError(t, err)
	assert.Equal(t, "notes.txt", info.Name)
	assert.Equal(t, int64(42), info.Size)
}
