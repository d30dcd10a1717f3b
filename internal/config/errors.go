// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates an empty backend address or a
	// negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidEndpointConfigs indicates an endpoint path that does not
	// start with "/".
	ErrInvalidEndpointConfigs = errors.New("invalid endpoint configuration")
	// ErrInvalidFormFieldConfigs indicates an empty multipart field name.
	ErrInvalidFormFieldConfigs = errors.New("invalid form field configuration")
	// ErrInvalidStorageConfigs indicates an empty download directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
