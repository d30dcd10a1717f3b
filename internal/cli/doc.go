// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli provides the filecrypt command line. Without a subcommand it
// starts the interactive terminal UI; the encrypt and decrypt subcommands
// submit a single file headlessly and print the outcome.
package cli
