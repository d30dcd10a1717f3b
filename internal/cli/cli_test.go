// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-file-encryptor/internal/client"
	"github.com/MKhiriev/go-file-encryptor/internal/logger"
	"github.com/MKhiriev/go-file-encryptor/internal/service"
	"github.com/MKhiriev/go-file-encryptor/internal/tui"
	"github.com/MKhiriev/go-file-encryptor/models"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ──────────────────────────────────────────────────────────────────

var testBuildInfo = models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123")

// newBackend starts a fake encryption backend. Encrypt prefixes the payload
// with "enc:", decrypt strips it; a key of "bad-key!" is rejected.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	handle := func(transform func([]byte) []byte, suffix string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.FormValue("secretKey") == "bad-key!" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "bad key"})
				return
			}

			f, header, err := r.FormFile("file")
			if !assert.NoError(t, err) {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			defer f.Close()

			payload, _ := io.ReadAll(f)
			w.Header().Set("Content-Disposition", `attachment; filename="`+header.Filename+suffix+`"`)
			_, _ = w.Write(transform(payload))
		}
	}

	r := chi.NewRouter()
	r.Post("/encrypt", handle(func(b []byte) []byte { return append([]byte("enc:"), b...) }, ".enc"))
	r.Post("/decrypt", handle(func(b []byte) []byte { return bytes.TrimPrefix(b, []byte("enc:")) }, ".dec"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) runResult {
	t.Helper()
	t.Setenv("CONFIG", "")

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	code := execute(context.Background(), cmd)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func newTestRoot() *cobra.Command {
	return NewRootCommand(testBuildInfo, logger.Nop())
}

// ── headless commands ────────────────────────────────────────────────────────

func TestEncryptDecryptRoundTrip(t *testing.T) {
	srv := newBackend(t)
	downloads := t.TempDir()
	input := writeInput(t, "report.txt", "top secret")

	res := run(t, newTestRoot(), "", "encrypt", "-i", input, "-k", "correct horse", "-a", srv.URL, "-o", downloads)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "File encrypted successfully!")

	encrypted := filepath.Join(downloads, "report.txt.enc")
	assert.Contains(t, res.stdout, encrypted)
	data, err := os.ReadFile(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "enc:top secret", string(data))

	res = run(t, newTestRoot(), "", "decrypt", encrypted, "-k", "correct horse", "-a", srv.URL, "-o", downloads)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "File decrypted successfully!")

	data, err = os.ReadFile(filepath.Join(downloads, "report.txt.enc.dec"))
	require.NoError(t, err)
	assert.Equal(t, "top secret", string(data))
}

func TestEncrypt_KeyFromStdin(t *testing.T) {
	srv := newBackend(t)
	downloads := t.TempDir()
	input := writeInput(t, "notes.md", "hello")

	res := run(t, newTestRoot(), "correct horse\n", "encrypt", "-i", input, "-K", "-a", srv.URL, "-o", downloads)

	require.Equal(t, 0, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(downloads, "notes.md.enc"))
}

func TestEncrypt_KeyPromptFromPipe(t *testing.T) {
	srv := newBackend(t)
	downloads := t.TempDir()
	input := writeInput(t, "notes.md", "hello")

	res := run(t, newTestRoot(), "correct horse", "encrypt", "-i", input, "-a", srv.URL, "-o", downloads)

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "Secret key: ")
	assert.FileExists(t, filepath.Join(downloads, "notes.md.enc"))
}

func TestEncrypt_Failures(t *testing.T) {
	srv := newBackend(t)
	input := writeInput(t, "report.txt", "top secret")

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "no file",
			args:    []string{"encrypt", "-k", "correct horse", "-a", srv.URL},
			wantMsg: "Please select a file",
		},
		{
			name:    "short key",
			args:    []string{"encrypt", "-i", input, "-k", "short", "-a", srv.URL},
			wantMsg: "Secret key must be at least 8 characters long",
		},
		{
			name:    "server rejects key",
			args:    []string{"encrypt", "-i", input, "-k", "bad-key!", "-a", srv.URL},
			wantMsg: "bad key",
		},
		{
			name:    "conflicting key sources",
			args:    []string{"encrypt", "-i", input, "-k", "correct horse", "-K", "-a", srv.URL},
			wantMsg: ErrConflictingKeySources.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downloads := t.TempDir()
			args := append(tt.args, "-o", downloads)

			res := run(t, newTestRoot(), "", args...)

			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, tt.wantMsg)
			assert.Empty(t, res.stdout)

			entries, err := os.ReadDir(downloads)
			require.NoError(t, err)
			assert.Empty(t, entries, "nothing is saved on failure")
		})
	}
}

func TestEncrypt_ServerUnavailable(t *testing.T) {
	srv := newBackend(t)
	addr := srv.URL
	srv.Close()

	input := writeInput(t, "report.txt", "top secret")
	res := run(t, newTestRoot(), "", "encrypt", "-i", input, "-k", "correct horse", "-a", addr, "-o", t.TempDir())

	assert.Equal(t, 1, res.code)
	assert.NotEmpty(t, res.stderr)
}

// ── root command ─────────────────────────────────────────────────────────────

type fakeUI struct {
	err error
	ran bool
}

func (f *fakeUI) Run(context.Context) error {
	f.ran = true
	return f.err
}

func TestRoot_StartsUI(t *testing.T) {
	tests := []struct {
		name     string
		uiErr    error
		wantCode int
	}{
		{name: "user quit", uiErr: tui.ErrUserQuit, wantCode: 0},
		{name: "ui failure", uiErr: errors.New("no tty"), wantCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			var gotServices *service.ClientServices
			factory := func(services *service.ClientServices, _ *logger.Logger) (client.UI, error) {
				gotServices = services
				return ui, nil
			}

			cmd := newRootCommand(testBuildInfo, logger.Nop(), factory)
			res := run(t, cmd, "", "-a", "localhost:1", "-o", t.TempDir())

			assert.True(t, ui.ran)
			assert.NotNil(t, gotServices)
			assert.Equal(t, tt.wantCode, res.code)
		})
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	cmd := newRootCommand(testBuildInfo, logger.Nop(), func(*service.ClientServices, *logger.Logger) (client.UI, error) {
		t.Fatal("ui must not start with an invalid config")
		return nil, nil
	})

	res := run(t, cmd, "", "-a", "http://[::1")

	assert.Equal(t, 1, res.code)
	assert.NotEmpty(t, res.stderr)
}

func TestVersion(t *testing.T) {
	res := run(t, newTestRoot(), "", "version", "--short")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "1.2.3\n", res.stdout)

	res = run(t, newTestRoot(), "", "version")
	assert.Contains(t, res.stdout, "Commit:     abc123")

	res = run(t, newTestRoot(), "", "--version")
	assert.Contains(t, res.stdout, "1.2.3 (commit abc123, built 2026-01-02)")
}

// ── key input ────────────────────────────────────────────────────────────────

func TestReadKeyFromReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "newline", input: "correct horse\n", want: "correct horse"},
		{name: "crlf", input: "correct horse\r\n", want: "correct horse"},
		{name: "no newline", input: "correct horse", want: "correct horse"},
		{name: "only first line", input: "first\nsecond\n", want: "first"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readKeyFromReader(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReporter_Failure(t *testing.T) {
	var buf bytes.Buffer
	newReporter(&buf).Failure(context.Canceled)
	assert.Contains(t, buf.String(), "Operation cancelled")
}
