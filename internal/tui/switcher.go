// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// switcherModel is the ctrl+k room switcher overlay.
type switcherModel struct {
	input textinput.Model
	rooms []models.RoomSummary
	idx   int
}

func newSwitcherModel(rooms []models.RoomSummary) switcherModel {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "search rooms..."
	in.Width = 40
	in.Focus()

	return switcherModel{input: in, rooms: rooms}
}

// filterRooms keeps rooms whose name or room ID localpart contains query,
// case-insensitively. The server part of the ID never matches.
func filterRooms(rooms []models.RoomSummary, query string) []models.RoomSummary {
	q := strings.ToLower(query)
	out := make([]models.RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		idLocal, _, _ := strings.Cut(r.RoomID, ":")
		if strings.Contains(strings.ToLower(r.DisplayName), q) ||
			strings.Contains(strings.ToLower(idLocal), q) {
			out = append(out, r)
		}
	}
	return out
}

func (m switcherModel) matches() []models.RoomSummary {
	return filterRooms(m.rooms, m.input.Value())
}

// Update returns the selected room ID once enter is pressed, and closed
// when the overlay should go away.
func (m switcherModel) Update(msg tea.Msg) (_ switcherModel, selected string, closed bool, _ tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		matches := m.matches()
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, "", true, nil
		case key.Matches(keyMsg, keys.enter):
			if len(matches) == 0 {
				return m, "", false, nil
			}
			return m, matches[min(m.idx, len(matches)-1)].RoomID, true, nil
		case key.Matches(keyMsg, keys.down), key.Matches(keyMsg, keys.tab):
			if len(matches) > 0 {
				m.idx = (min(m.idx, len(matches)-1) + 1) % len(matches)
			}
			return m, "", false, nil
		case key.Matches(keyMsg, keys.up), key.Matches(keyMsg, keys.backtab):
			if len(matches) > 0 {
				m.idx = (min(m.idx, len(matches)-1) - 1 + len(matches)) % len(matches)
			}
			return m, "", false, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.idx = 0
	}
	return m, "", false, cmd
}

func (m switcherModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("// room switcher"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("esc to close"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	matches := m.matches()
	if len(matches) == 0 {
		b.WriteString(dimStyle.Render("no rooms match"))
	}
	active := min(m.idx, max(len(matches)-1, 0))
	for i, r := range matches {
		line := roomPrefix(r) + " " + truncateRoomName(r.Name()) + "  " + dimStyle.Render(r.RoomID)
		if i == active {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(matches)-1 {
			b.WriteString("\n")
		}
	}

	return overlayBoxStyle.Render(b.String())
}
