// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation identifies which backend transformation a submission requests.
// The tag travels with the request so that endpoint selection and success
// wording never depend on the endpoint string.
type Operation int

const (
	// Encrypt asks the backend to encrypt the uploaded file.
	Encrypt Operation = iota
	// Decrypt asks the backend to decrypt the uploaded file.
	Decrypt
)

// String returns the lower-case operation name ("encrypt" / "decrypt").
func (o Operation) String() string {
	switch o {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// PastTense returns the wording used in success notifications
// ("encrypted" / "decrypted").
func (o Operation) PastTense() string {
	switch o {
	case Encrypt:
		return "encrypted"
	case Decrypt:
		return "decrypted"
	default:
		return "processed"
	}
}

// Title returns the capitalised operation name used for tab labels.
func (o Operation) Title() string {
	switch o {
	case Encrypt:
		return "Encrypt"
	case Decrypt:
		return "Decrypt"
	default:
		return "Unknown"
	}
}

// IsValid reports whether o is one of the known operations.
func (o Operation) IsValid() bool {
	return o == Encrypt || o == Decrypt
}
