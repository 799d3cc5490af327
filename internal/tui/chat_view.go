// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	sidebarWidth     = 38
	maxRoomShortcuts = 9
)

func syncIndicator(status models.SyncStatus) string {
	switch {
	case status.IsLive():
		return syncOKStyle.Render("●")
	case status == models.SyncError:
		return syncErrStyle.Render("●")
	default:
		return dimStyle.Render("○")
	}
}

// renderSidebar renders the room list column.
func renderSidebar(snap models.Snapshot, height int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("myMatrix"))
	b.WriteString(" ")
	b.WriteString(syncIndicator(snap.SyncStatus))
	b.WriteString("\n")

	if snap.UserID != "" {
		b.WriteString(dimStyle.Render("$ "))
		b.WriteString(lipgloss.NewStyle().Foreground(userColor(snap.UserID)).Render(displayName(snap.UserID)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("// rooms   ctrl+n new"))
	b.WriteString("\n")

	if len(snap.Rooms) == 0 {
		b.WriteString(dimStyle.Render("no rooms joined"))
		b.WriteString("\n")
	}

	for i, r := range snap.Rooms {
		b.WriteString(renderRoomEntry(r, i, r.RoomID == snap.ActiveRoomID))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[ctrl+o logout]"))

	return sidebarStyle.Width(sidebarWidth).Height(max(height, 1)).Render(b.String())
}

func renderRoomEntry(r models.RoomSummary, idx int, active bool) string {
	name := truncateRoomName(r.Name())
	name += strings.Repeat(" ", max(maxRoomNameWidth-ansi.StringWidth(name), 0))

	badge := unreadBadge(r.UnreadCount)
	badge = strings.Repeat(" ", max(3-len(badge), 0)) + badge

	hint := ""
	if idx < maxRoomShortcuts {
		hint = "alt+" + strconv.Itoa(idx+1)
	}

	line := roomPrefix(r) + " " + name
	if active {
		line = activeRoomStyle.Render(line)
	}
	return line + " " + badgeStyle.Render(badge) + " " + dimStyle.Render(hint)
}

// renderHeader renders the active room title line.
func renderHeader(room models.RoomSummary, width int) string {
	title := roomPrefix(room) + " " + room.Name()
	if room.Encrypted {
		title += " 🔒"
	}
	title += "  " + dimStyle.Render(room.RoomID)
	return headerStyle.Width(max(width, 1)).Render(ansi.Truncate(title, max(width, 1), "…"))
}

// renderTimeline renders the message lines of a room, wrapped to width.
func renderTimeline(records []models.MessageRecord, self string, width int, loc *time.Location) string {
	if len(records) == 0 {
		return dimStyle.Render("-- no messages in timeline --")
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		line := renderMessage(rec, self, loc)
		if width > 0 {
			line = ansi.Wrap(line, width, " ")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderNoRoom() string {
	return strings.Join([]string{
		"// no room selected",
		dimStyle.Render("use ctrl+k to open room switcher"),
		dimStyle.Render("or alt+1..9 to pick a room from the sidebar"),
	}, "\n")
}
