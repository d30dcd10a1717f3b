// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// file encryptor client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and derives per-submission
// loggers via ForRequest.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the name of the file the interactive client logs to.
const LogFileName = "filecrypt.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "cli")
// writing JSON to w. A nil w defaults to os.Stderr so that the headless
// commands keep stdout for their own output.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	configureGlobals()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger constructs a *Logger for the interactive client. The
// terminal is owned by the UI, so entries go to LogFileName next to the
// executable. If that file cannot be opened the logger discards output.
//
// The returned io.Closer releases the log file and must be closed on exit.
func NewClientLogger(role string) (*Logger, io.Closer) {
	execPath, err := os.Executable()
	if err != nil {
		return Nop(), io.NopCloser(nil)
	}

	logPath := filepath.Join(filepath.Dir(execPath), LogFileName)
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Nop(), io.NopCloser(nil)
	}

	return NewLogger(role, logFile), logFile
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ForRequest returns a child logger tagged with the submission request id.
func (l *Logger) ForRequest(requestID string) *Logger {
	return &Logger{l.With().Str("request_id", requestID).Logger()}
}

// FromContext returns the logger attached to ctx with [Logger.WithContext].
// When ctx carries none, fallback is returned, or a Nop logger if fallback
// is nil.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if l := log.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return &Logger{*l}
	}
	if fallback != nil {
		return fallback
	}
	return Nop()
}

// WithContext attaches l to ctx for retrieval with FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}
