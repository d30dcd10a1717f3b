// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every entry contains the "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf)
	require.NotNil(t, l)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

// TestNewLogger_ContainsTimestamp verifies that entries contain a timestamp.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role", &buf)

	l.Info().Msg("ts check")

	_, hasTime := decodeEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerField verifies that the caller field is named "func"
// and holds a function name.
func TestNewLogger_CallerField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", &buf)

	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, decodeEntry(t, &buf)["func"], "TestNewLogger_CallerField")
}

// TestNewLogger_GlobalLevelIsDebug verifies the global level side effect.
func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-role", nil)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestForRequest_AddsRequestID verifies the request id field.
func TestForRequest_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("cli", &buf).ForRequest("req-42")

	l.Info().Msg("submitted")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "cli", entry["role"])
}

// TestFromContext_Fallback verifies the logger returned for a context
// without an attached logger.
func TestFromContext_Fallback(t *testing.T) {
	fallback := NewLogger("fallback-role", nil)

	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	nop := FromContext(context.Background(), nil)
	require.NotNil(t, nop)
	assert.Equal(t, zerolog.Disabled, nop.GetLevel())
}

// TestWithContext_RoundTrip verifies that a logger attached with WithContext
// is returned by FromContext in preference to the fallback.
func TestWithContext_RoundTrip(t *testing.T) {
	var buf, fallbackBuf bytes.Buffer
	l := NewLogger("ctx-role", &buf).ForRequest("req-7")
	ctx := l.WithContext(context.Background())

	FromContext(ctx, NewLogger("fallback-role", &fallbackBuf)).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Empty(t, fallbackBuf.String())
}
