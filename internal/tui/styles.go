// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// senderPalette is indexed by userColorIndex.
var senderPalette = []lipgloss.Color{
	"#89b4fa", // blue
	"#a6e3a1", // green
	"#fab387", // peach
	"#f38ba8", // red
	"#cba6f7", // mauve
	"#f9e2af", // yellow
	"#94e2d5", // teal
	"#89dceb", // sky
	"#b4befe", // lavender
	"#eba0ac", // maroon
}

const (
	ownColor    = lipgloss.Color("#1793D1")
	accentColor = lipgloss.Color("#1793D1")
	dimColor    = lipgloss.Color("#6c7086")
	okColor     = lipgloss.Color("#a6e3a1")
	errColor    = lipgloss.Color("#f38ba8")
)

var (
	appStyle        = lipgloss.NewStyle().Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	dimStyle        = lipgloss.NewStyle().Foreground(dimColor)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(errColor)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(dimColor).
			PaddingRight(1)
	activeRoomStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	badgeStyle      = lipgloss.NewStyle().Bold(true).Foreground(errColor)
	syncOKStyle     = lipgloss.NewStyle().Foreground(okColor)
	syncErrStyle    = lipgloss.NewStyle().Foreground(errColor)

	headerStyle    = lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(dimColor)
	ownLineStyle   = lipgloss.NewStyle().Bold(true)
	systemStyle    = lipgloss.NewStyle().Italic(true).Foreground(dimColor)
	decryptStyle   = lipgloss.NewStyle().Foreground(errColor)
	pendingStyle   = lipgloss.NewStyle().Faint(true)
	promptStyle    = lipgloss.NewStyle().Foreground(accentColor)
	selectedStyle  = lipgloss.NewStyle().Reverse(true)
	statusBarStyle = lipgloss.NewStyle().Faint(true)
)
