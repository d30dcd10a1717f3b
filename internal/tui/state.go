// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-file-encryptor/models"
)

// NotificationDuration is how long a notification stays visible.
const NotificationDuration = 5 * time.Second

// Tab identifies one of the two form panels.
type Tab int

const (
	TabEncrypt Tab = iota
	TabDecrypt
)

// Operation returns the backend operation submitted from the tab.
func (t Tab) Operation() models.Operation {
	if t == TabDecrypt {
		return models.Decrypt
	}
	return models.Encrypt
}

// Other returns the tab that is not t.
func (t Tab) Other() Tab {
	if t == TabDecrypt {
		return TabEncrypt
	}
	return TabDecrypt
}

type NotificationKind int

const (
	KindInfo NotificationKind = iota
	KindSuccess
	KindError
)

// Notification is a transient message. The zero value is "nothing shown".
type Notification struct {
	Message      string
	Kind         NotificationKind
	VisibleUntil time.Time
	// Seq identifies the notification for its dismissal timer.
	Seq uint64
}

func (n Notification) Visible() bool {
	return n.Message != ""
}

// UIState is the complete presentation state of the client. It is only
// changed through the methods below, each returning a new value.
type UIState struct {
	ActiveTab    Tab
	Loading      bool
	Notification Notification

	lastSeq uint64
}

// ShowLoading sets the loading indicator. Repeated calls are idempotent.
func (s UIState) ShowLoading(visible bool) UIState {
	s.Loading = visible
	return s
}

// ShowNotification replaces any visible notification with message and
// returns the new state with the seq its dismissal timer must carry.
func (s UIState) ShowNotification(message string, kind NotificationKind, now time.Time) (UIState, uint64) {
	s.lastSeq++
	s.Notification = Notification{
		Message:      message,
		Kind:         kind,
		VisibleUntil: now.Add(NotificationDuration),
		Seq:          s.lastSeq,
	}
	return s, s.lastSeq
}

// DismissNotification hides the notification only if seq is the one
// currently shown; timers of replaced notifications are no-ops.
func (s UIState) DismissNotification(seq uint64) UIState {
	if !s.Notification.Visible() || s.Notification.Seq != seq {
		return s
	}
	s.Notification = Notification{}
	return s
}

// SwitchTab makes tab the single active tab.
func (s UIState) SwitchTab(tab Tab) UIState {
	if tab != TabEncrypt && tab != TabDecrypt {
		return s
	}
	s.ActiveTab = tab
	return s
}
