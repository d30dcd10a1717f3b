// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63"))
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 2).Border(lipgloss.RoundedBorder())
	fileInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	infoStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func notificationStyle(kind NotificationKind) lipgloss.Style {
	switch kind {
	case KindSuccess:
		return successStyle
	case KindError:
		return errorStyle
	default:
		return infoStyle
	}
}
