// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/Julien-Turcotte/myMatrix/internal/utils"
	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// newConversationModel is the ctrl+n dialog. tab switches between a named
// room and a direct message.
type newConversationModel struct {
	input   textinput.Model
	direct  bool
	errMsg  string
	loading bool
}

func newNewConversationModel() newConversationModel {
	in := textinput.New()
	in.Placeholder = "room name..."
	in.Width = 40
	in.Focus()
	return newConversationModel{input: in}
}

// Update returns the options to submit when enter is pressed on valid
// input, and closed when esc dismisses the dialog.
func (m newConversationModel) Update(msg tea.Msg) (_ newConversationModel, submit *models.CreateRoomOptions, closed bool, _ tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.loading {
			return m, nil, false, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, nil, true, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.direct = !m.direct
			m.errMsg = ""
			m.input.SetValue("")
			if m.direct {
				m.input.Placeholder = "user id, e.g. @user:server.com"
			} else {
				m.input.Placeholder = "room name..."
			}
			return m, nil, false, nil
		case key.Matches(keyMsg, keys.enter):
			opts, errMsg := m.options()
			if opts == nil {
				m.errMsg = errMsg
				return m, nil, false, nil
			}
			m.errMsg = ""
			m.loading = true
			return m, opts, false, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, isKey := msg.(tea.KeyMsg); isKey {
		m.errMsg = ""
	}
	return m, nil, false, cmd
}

func (m newConversationModel) options() (*models.CreateRoomOptions, string) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return nil, ""
	}
	if m.direct {
		if !utils.IsUserID(value) {
			return nil, "User ID must be in format @user:server.com"
		}
		return &models.CreateRoomOptions{IsDirect: true, InviteUserID: value}, ""
	}
	return &models.CreateRoomOptions{Name: value}, ""
}

// failed re-enables the dialog after the engine rejected the request.
func (m *newConversationModel) failed(msg string) {
	m.loading = false
	m.errMsg = msg
}

func (m newConversationModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("// new conversation"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("esc to close │ tab: room/dm"))
	b.WriteString("\n")

	if m.direct {
		b.WriteString("# room  " + selectedStyle.Render("@ direct message"))
	} else {
		b.WriteString(selectedStyle.Render("# room") + "  @ direct message")
	}
	b.WriteString("\n\n")

	prefix := "# "
	if m.direct {
		prefix = "@ "
	}
	b.WriteString(prefix)
	b.WriteString(m.input.View())

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	if m.loading {
		b.WriteString("creating…")
	} else {
		b.WriteString("[create]")
	}

	return overlayBoxStyle.Render(b.String())
}
