// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/Julien-Turcotte/myMatrix/internal/utils"
	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	maxRoomNameWidth = 22
	maxUnreadBadge   = 99
)

var replyFallback = regexp.MustCompile(`(?s)^>.*\n\n`)

// userColorIndex hashes id over its UTF-16 code units with 32-bit
// wraparound (h = c + h*31) and maps it onto senderPalette.
func userColorIndex(id string) int {
	var h int32
	for _, c := range utf16.Encode([]rune(id)) {
		h = int32(c) + (h << 5) - h
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(len(senderPalette)))
}

func userColor(id string) lipgloss.Color {
	return senderPalette[userColorIndex(id)]
}

// displayName is the localpart of a user ID, used wherever a sender is
// shown.
func displayName(userID string) string {
	if userID == "" {
		return "unknown"
	}
	return utils.Localpart(userID)
}

func formatTimestamp(ts int64, loc *time.Location) string {
	return time.UnixMilli(ts).In(loc).Format("15:04")
}

func truncateRoomName(name string) string {
	return ansi.Truncate(name, maxRoomNameWidth, "…")
}

func unreadBadge(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > maxUnreadBadge:
		return strconv.Itoa(maxUnreadBadge) + "+"
	default:
		return strconv.Itoa(n)
	}
}

func roomPrefix(r models.RoomSummary) string {
	if r.IsDirect {
		return "@"
	}
	return "#"
}

// promptLabel renders "alice@matrix.org ~ >" for "@alice:matrix.org".
func promptLabel(userID string) string {
	local, server, ok := utils.SplitUserID(userID)
	if !ok {
		local, server = "user", "matrix"
	}
	return local + "@" + server + " ~ >"
}

// membershipAction describes an m.room.member transition.
func membershipAction(content map[string]any) string {
	membership, _ := content["membership"].(string)
	prev, _ := content["prev_membership"].(string)

	switch membership {
	case "join":
		return "joined the room"
	case "leave":
		if prev == "invite" {
			return "rejected invite"
		}
		return "left the room"
	case "invite":
		return "was invited"
	case "ban":
		return "was banned"
	default:
		return ""
	}
}

// messageBody returns the displayable body, without the quoted fallback
// of a reply.
func messageBody(rec models.MessageRecord) string {
	body := rec.ContentString("body")
	relates, _ := rec.Content["m.relates_to"].(map[string]any)
	if _, isReply := relates["m.in_reply_to"]; isReply {
		return replyFallback.ReplaceAllString(body, "")
	}
	return body
}

// typingLine renders who is typing, leaving out self. Empty when nobody is.
func typingLine(userIDs []string, self string) string {
	names := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if id == self {
			continue
		}
		names = append(names, displayName(id))
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return "... " + names[0] + " is typing"
	default:
		return "... " + strings.Join(names, ", ") + " are typing"
	}
}

// renderMessage renders one timeline entry as a single line.
func renderMessage(rec models.MessageRecord, self string, loc *time.Location) string {
	ts := dimStyle.Render("[" + formatTimestamp(rec.Timestamp, loc) + "]")
	sender := displayName(rec.Sender)
	senderColored := lipgloss.NewStyle().Foreground(userColor(rec.Sender)).Render(sender)
	isOwn := self != "" && rec.Sender == self

	var line string
	switch {
	case rec.Type == models.MessageMembership:
		line = ts + " " + systemStyle.Render("-- "+sender+" "+membershipAction(rec.Content))
	case rec.IsDecryptionFailure:
		line = ts + " " + senderColored + ": " + decryptStyle.Render("[unable to decrypt]")
	case rec.ContentString("msgtype") == "m.emote":
		line = ts + " * " + senderColored + " " + rec.ContentString("body")
	default:
		name := senderColored
		if isOwn {
			name = lipgloss.NewStyle().Foreground(ownColor).Render(sender)
		}
		body := messageBody(rec)
		if rec.ContentString("msgtype") == "m.image" {
			body = "[image: " + rec.ContentString("body") + "]"
		}
		if isOwn {
			body = ownLineStyle.Render(body)
		}
		line = ts + " " + name + ": " + body
	}

	if rec.IsLocal {
		line = pendingStyle.Render(line)
	}
	return line
}
