// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-file-encryptor/internal/service"
	"github.com/MKhiriev/go-file-encryptor/internal/utils"
	"github.com/MKhiriev/go-file-encryptor/models"
	"github.com/charmbracelet/lipgloss"
)

// Reporter prints the outcome of a headless command. Colours are used only
// when w is a terminal.
type Reporter struct {
	w io.Writer

	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)

	return &Reporter{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (r *Reporter) Success(result models.SubmissionResult) {
	fmt.Fprintln(r.w, r.success.Render("✓ "+service.SuccessMessage(result)))
	fmt.Fprintln(r.w, r.muted.Render(fmt.Sprintf("Saved to: %s (%s)", result.SavedPath, utils.FormatSize(result.Size))))
}

func (r *Reporter) Failure(err error) {
	msg := service.NotificationMessage(err)
	if errors.Is(err, context.Canceled) {
		msg = "Operation cancelled"
	}
	fmt.Fprintln(r.w, r.failure.Render("✗ "+msg))
}
