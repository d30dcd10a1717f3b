// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// file encryptor client: the validator, the transfer adapter, the terminal UI
// and the headless CLI.
//
// All Msg* constants are human-readable strings shown to the user in
// notifications. Keeping them in one place ensures consistent wording between
// the interactive and headless front-ends.
package app

const (
	// MsgNoFileSelected is shown when a form is submitted without a file.
	MsgNoFileSelected = "Please select a file"

	// MsgFileTooLargeFormat is shown when the selected file exceeds the upload
	// limit. The single verb receives the limit in megabytes.
	MsgFileTooLargeFormat = "File size must be less than %dMB"

	// MsgKeyTooShortFormat is shown when the secret key is shorter than the
	// minimum length. The single verb receives the minimum length.
	MsgKeyTooShortFormat = "Secret key must be at least %d characters long"

	// MsgUnknownServerError replaces a missing or unreadable "error" field in
	// a non-2xx backend response.
	MsgUnknownServerError = "Unknown error occurred"

	// MsgGenericError is shown when an unexpected failure carries no message.
	MsgGenericError = "An error occurred"

	// MsgServerUnavailable replaces low-level dial and timeout errors.
	MsgServerUnavailable = "Server is unavailable"

	// MsgSubmissionInFlight is shown when a form is submitted while a
	// previous submission is still being processed.
	MsgSubmissionInFlight = "Please wait for the current file to finish"

	// MsgSuccessFormat is shown when a file has been processed and saved.
	// The single verb receives the operation wording ("encrypted").
	MsgSuccessFormat = "File %s successfully!"

	// MsgCopied is shown after the saved path was copied to the clipboard.
	MsgCopied = "Saved path copied to clipboard"

	// MsgNothingToCopy is shown when there is no saved file to copy yet.
	MsgNothingToCopy = "Nothing to copy yet"
)

// DefaultFilename names a processed file when the backend suggests no
// usable name.
const DefaultFilename = "processed_file"
