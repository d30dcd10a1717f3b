// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSubmissionInFlight is returned when Submit is called while another
	// submission has not settled yet.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
