// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the configuration, the transfer adapter, the download storage
// and the client services into a single process lifecycle driven by the
// terminal UI.
package client
