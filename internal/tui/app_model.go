// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-file-encryptor/internal/app"
	"github.com/MKhiriev/go-file-encryptor/internal/service"
	"github.com/MKhiriev/go-file-encryptor/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	ctx        context.Context
	submission service.SubmissionService
	buildInfo  models.AppBuildInfo

	state   UIState
	forms   [2]formModel
	spinner spinner.Model

	lastSavedPath string
	showBuildInfo bool
	quitByUser    bool

	now           func() time.Time
	copyClipboard func(string) error
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return appModel{
		ctx:           ctx,
		submission:    services.SubmissionService,
		buildInfo:     services.AppInfoService.GetBuildInfo(ctx),
		state:         UIState{ActiveTab: TabEncrypt},
		forms:         [2]formModel{newFormModel(models.Encrypt), newFormModel(models.Decrypt)},
		spinner:       sp,
		now:           time.Now,
		copyClipboard: clipboard.WriteAll,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case submissionDoneMsg:
		m.state = m.state.ShowLoading(false)
		if msg.err != nil {
			return m.notify(humanizeServerUnavailableError(msg.err), KindError)
		}
		m.lastSavedPath = msg.result.SavedPath
		return m.notify(service.SuccessMessage(msg.result), KindSuccess)
	case dismissNotificationMsg:
		m.state = m.state.DismissNotification(msg.seq)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.notify(msg.err.Error(), KindError)
		}
		return m.notify(app.MsgCopied, KindInfo)
	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.toggleTab):
		m.state = m.state.SwitchTab(m.state.ActiveTab.Other())
		return m, nil
	case key.Matches(msg, keys.encryptTab):
		m.state = m.state.SwitchTab(TabEncrypt)
		return m, nil
	case key.Matches(msg, keys.decryptTab):
		m.state = m.state.SwitchTab(TabDecrypt)
		return m, nil
	case key.Matches(msg, keys.tab):
		m.forms[m.state.ActiveTab] = m.activeForm().focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.forms[m.state.ActiveTab] = m.activeForm().focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submit()
	case key.Matches(msg, keys.copy):
		if m.lastSavedPath == "" {
			return m.notify(app.MsgNothingToCopy, KindInfo)
		}
		return m, m.cmdCopyToClipboard(m.lastSavedPath)
	}

	form, cmd, pathChanged := m.activeForm().update(msg)
	if pathChanged {
		form.file, form.fileErr = m.submission.DescribeFile(form.path())
	}
	m.forms[m.state.ActiveTab] = form

	return m, cmd
}

// submit validates the active tab synchronously and, when the input is
// valid, starts the transfer. Invalid input is reported at once and never
// shows the loading indicator. It is a no-op while a previous submission is
// still loading.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	if m.state.Loading {
		return m, nil
	}

	form := m.activeForm()
	req, err := m.submission.Prepare(m.ctx, form.op, form.path(), form.key())
	if err != nil {
		return m.notify(humanizeServerUnavailableError(err), KindError)
	}

	m.state = m.state.ShowLoading(true)

	return m, tea.Batch(m.spinner.Tick, m.cmdExecute(req))
}

// notify shows message and schedules its dismissal.
func (m appModel) notify(message string, kind NotificationKind) (tea.Model, tea.Cmd) {
	var seq uint64
	m.state, seq = m.state.ShowNotification(message, kind, m.now())
	return m, cmdDismissNotification(seq)
}

func (m appModel) activeForm() formModel {
	return m.forms[m.state.ActiveTab]
}

func (m appModel) cmdExecute(req models.SubmissionRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.submission
	return func() tea.Msg {
		result, err := svc.Execute(ctx, req)
		return submissionDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdCopyToClipboard(text string) tea.Cmd {
	copyFn := m.copyClipboard
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdDismissNotification(seq uint64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return dismissNotificationMsg{seq: seq}
	})
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.activeForm().View())
	b.WriteString("\n")

	if m.state.Loading {
		b.WriteString(m.spinner.View() + " Processing...\n")
	}
	if n := m.state.Notification; n.Visible() {
		b.WriteString(notificationStyle(n.Kind).Render(n.Message) + "\n")
	}
	if m.lastSavedPath != "" {
		b.WriteString(fileInfoStyle.Render("Saved to: "+m.lastSavedPath) + "\n")
	}

	return appStyle.Render(renderPage("FILE ENCRYPTOR", b.String(), renderHelp(keys.shortHelp())))
}

func (m appModel) viewTabs() string {
	tabs := []Tab{TabEncrypt, TabDecrypt}
	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := inactiveTabStyle
		if t == m.state.ActiveTab {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(t.Operation().Title()))
	}
	return strings.Join(rendered, " ")
}
