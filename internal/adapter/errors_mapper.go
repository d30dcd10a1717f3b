// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-file-encryptor/internal/app"
)

// maxErrorBodySize caps how much of a failed response is read.
const maxErrorBodySize = 64 * 1024

type errorBody struct {
	Error string `json:"error"`
}

// mapHTTPError converts a backend response into an error. 2xx statuses map
// to nil. Otherwise the body is decoded as {"error": "..."}; an absent,
// empty or unparsable field falls back to app.MsgUnknownServerError.
func mapHTTPError(statusCode int, body io.Reader) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	message := app.MsgUnknownServerError
	if body != nil {
		raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
		if err == nil {
			var eb errorBody
			if json.Unmarshal(raw, &eb) == nil && strings.TrimSpace(eb.Error) != "" {
				message = eb.Error
			}
		}
	}

	return &TransferError{StatusCode: statusCode, Message: message}
}
