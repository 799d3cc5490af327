// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/Julien-Turcotte/myMatrix/internal/service"
	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chrome is the number of chat panel rows outside the message viewport:
// header (2), typing line, input and status bar.
const chrome = 5

// ChatModel is the main screen: sidebar, active room timeline and the
// message input. It renders from engine snapshots and never caches room
// state of its own.
type ChatModel struct {
	ctx        context.Context
	engine     service.ClientSyncEngine
	loc        *time.Location
	typingIdle time.Duration

	snap     models.Snapshot
	width    int
	height   int
	viewport viewport.Model
	input    textinput.Model

	// typingRoom is the room a typing notification is active in.
	typingRoom string
	typingSeq  int

	switcher     *switcherModel
	newConv      *newConversationModel
	showConfirm  bool
	confirm      confirmModel
	pendingLeave string
	showError    bool
	errorOverlay errorOverlayModel
	status       string
}

// NewChatModel creates the main screen. typingIdle is how long the input
// may stay untouched before the typing notification is withdrawn.
func NewChatModel(ctx context.Context, engine service.ClientSyncEngine, typingIdle time.Duration) *ChatModel {
	in := textinput.New()
	in.Placeholder = "type a message... (/join /leave /me)"
	in.CharLimit = 0
	in.Focus()

	if typingIdle <= 0 {
		typingIdle = 2500 * time.Millisecond
	}

	return &ChatModel{
		ctx:        ctx,
		engine:     engine,
		loc:        time.Local,
		typingIdle: typingIdle,
		viewport:   viewport.New(80, 20),
		input:      in,
	}
}

// Init implements [tea.Model].
func (m *ChatModel) Init() tea.Cmd {
	m.refresh()
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case engineChangedMsg:
		m.refresh()
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.action + " failed: " + humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		if msg.selectRoomID != "" {
			return m, m.cmdSelect(msg.selectRoomID)
		}
		return m, nil
	case roomCreatedMsg:
		if msg.err != nil {
			if m.newConv != nil {
				m.newConv.failed(humanizeServerUnavailableError(msg.err))
				return m, nil
			}
			m.showErrorf("create failed: " + humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.newConv = nil
		return m, m.cmdSelect(msg.roomID)
	case typingIdleMsg:
		if msg.seq == m.typingSeq {
			m.stopTyping()
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "room id copied"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			roomID := m.pendingLeave
			m.pendingLeave = ""
			return m, m.cmdLeave(roomID)
		case key.Matches(msg, keys.no):
			m.showConfirm = false
			m.pendingLeave = ""
		}
		return m, nil
	}

	if m.switcher != nil {
		sw, selected, closed, cmd := m.switcher.Update(msg)
		m.switcher = &sw
		if closed {
			m.switcher = nil
		}
		if selected != "" {
			return m, m.cmdSelect(selected)
		}
		return m, cmd
	}

	if m.newConv != nil {
		nc, submit, closed, cmd := m.newConv.Update(msg)
		m.newConv = &nc
		if closed {
			m.newConv = nil
		}
		if submit != nil {
			return m, m.cmdCreateRoom(*submit)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.switcher):
		sw := newSwitcherModel(m.snap.Rooms)
		m.switcher = &sw
		return m, nil
	case key.Matches(msg, keys.selectRoom):
		idx, _ := roomShortcutIndex(msg.String())
		if idx < len(m.snap.Rooms) {
			return m, m.cmdSelect(m.snap.Rooms[idx].RoomID)
		}
		return m, nil
	case key.Matches(msg, keys.newConv):
		nc := newNewConversationModel()
		m.newConv = &nc
		return m, nil
	case key.Matches(msg, keys.leave):
		if room, ok := m.snap.ActiveRoom(); ok {
			m.showConfirm = true
			m.pendingLeave = room.RoomID
			m.confirm.message = room.Name()
		}
		return m, nil
	case key.Matches(msg, keys.copyRoomID):
		if m.snap.ActiveRoomID == "" {
			return m, nil
		}
		return m, cmdCopy(m.snap.ActiveRoomID)
	case key.Matches(msg, keys.logout):
		m.stopTyping()
		return m, m.cmdLogout()
	case key.Matches(msg, keys.scrollUp), key.Matches(msg, keys.scrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case key.Matches(msg, keys.esc):
		m.input.SetValue("")
		m.stopTyping()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.submit()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before && m.input.Value() != "" {
		return m, tea.Batch(cmd, m.startTyping())
	}
	return m, cmd
}

// submit handles the input line: slash commands or a message to the
// active room.
func (m *ChatModel) submit() tea.Cmd {
	command := parseInput(m.input.Value())
	if command.kind == inputNone {
		return nil
	}

	roomID := m.snap.ActiveRoomID
	m.stopTyping()
	m.input.SetValue("")

	switch command.kind {
	case inputJoin:
		return m.cmdJoin(command.arg)
	case inputLeave:
		if roomID == "" {
			m.status = "no room selected"
			return cmdClearStatus()
		}
		return m.cmdLeave(roomID)
	}

	if roomID == "" {
		m.status = "select a room first"
		return cmdClearStatus()
	}
	return m.cmdSend(command, roomID)
}

// startTyping announces typing once per burst and (re)arms the idle timer.
func (m *ChatModel) startTyping() tea.Cmd {
	roomID := m.snap.ActiveRoomID
	if roomID == "" {
		return nil
	}
	if m.typingRoom != roomID {
		m.stopTyping()
		m.typingRoom = roomID
		m.engine.SendTyping(roomID, true)
	}

	m.typingSeq++
	seq := m.typingSeq
	return tea.Tick(m.typingIdle, func(time.Time) tea.Msg {
		return typingIdleMsg{seq: seq}
	})
}

func (m *ChatModel) stopTyping() {
	m.typingSeq++
	if m.typingRoom == "" {
		return
	}
	m.engine.SendTyping(m.typingRoom, false)
	m.typingRoom = ""
}

// refresh re-reads the engine snapshot and re-renders the timeline. The
// viewport follows new messages only when it was already at the bottom or
// the active room changed.
func (m *ChatModel) refresh() {
	prevRoom := m.snap.ActiveRoomID
	follow := m.viewport.AtBottom() || prevRoom == ""

	m.snap = m.engine.Snapshot()
	if m.typingRoom != "" && m.typingRoom != m.snap.ActiveRoomID {
		m.stopTyping()
	}

	m.viewport.SetContent(m.timelineContent())
	if follow || prevRoom != m.snap.ActiveRoomID {
		m.viewport.GotoBottom()
	}
}

func (m *ChatModel) timelineContent() string {
	if m.snap.ActiveRoomID == "" {
		return renderNoRoom()
	}
	return renderTimeline(m.snap.Timelines[m.snap.ActiveRoomID], m.snap.UserID, m.viewport.Width, m.loc)
}

func (m *ChatModel) resize(width, height int) {
	m.width, m.height = width, height

	chatWidth := max(width-sidebarWidth-4, 10)
	m.viewport.Width = chatWidth
	m.viewport.Height = max(height-chrome, 1)
	m.input.Width = max(chatWidth-len(promptLabel(m.snap.UserID))-2, 10)

	m.viewport.SetContent(m.timelineContent())
	m.viewport.GotoBottom()
}

func (m *ChatModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// View implements [tea.Model].
func (m *ChatModel) View() string {
	chatWidth := m.viewport.Width

	var header string
	if room, ok := m.snap.ActiveRoom(); ok {
		header = renderHeader(room, chatWidth)
	} else {
		header = renderHeader(models.RoomSummary{RoomID: "no room"}, chatWidth)
	}

	typing := typingLine(m.snap.Typing[m.snap.ActiveRoomID], m.snap.UserID)
	prompt := promptStyle.Render(promptLabel(m.snap.UserID)) + " " + m.input.View()

	status := m.status
	if status == "" {
		status = "ctrl+k switch │ ctrl+n new │ ctrl+w leave │ ctrl+y copy id │ pgup/pgdn scroll"
	}

	panel := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		dimStyle.Render(typing),
		prompt,
		statusBarStyle.Render(status),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(m.snap, m.height), " ", panel)

	switch {
	case m.showError:
		body += "\n" + m.errorOverlay.View()
	case m.showConfirm:
		body += "\n" + m.confirm.View()
	case m.switcher != nil:
		body = lipgloss.Place(max(m.width, 1), max(m.height, 1), lipgloss.Center, lipgloss.Center, m.switcher.View())
	case m.newConv != nil:
		body = lipgloss.Place(max(m.width, 1), max(m.height, 1), lipgloss.Center, lipgloss.Center, m.newConv.View())
	}

	return appStyle.Render(body)
}

func (m *ChatModel) cmdSelect(roomID string) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		engine.SelectRoom(ctx, roomID)
		return nil
	}
}

func (m *ChatModel) cmdSend(command inputCommand, roomID string) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		send := engine.SendMessage
		if command.kind == inputEmote {
			send = engine.SendEmote
		}
		return actionDoneMsg{action: "send", err: send(ctx, roomID, command.arg)}
	}
}

func (m *ChatModel) cmdJoin(target string) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		roomID, err := engine.JoinRoom(ctx, target)
		return actionDoneMsg{action: "join", selectRoomID: roomID, err: err}
	}
}

func (m *ChatModel) cmdLeave(roomID string) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		return actionDoneMsg{action: "leave", err: engine.LeaveRoom(ctx, roomID)}
	}
}

func (m *ChatModel) cmdCreateRoom(opts models.CreateRoomOptions) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		roomID, err := engine.CreateRoom(ctx, opts)
		return roomCreatedMsg{roomID: roomID, err: err}
	}
}

func (m *ChatModel) cmdLogout() tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		engine.Logout(ctx)
		return logoutDoneMsg{}
	}
}
