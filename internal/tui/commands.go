// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type inputKind int

const (
	inputNone inputKind = iota
	inputText
	inputEmote
	inputJoin
	inputLeave
)

// inputCommand is a parsed line from the message input.
type inputCommand struct {
	kind inputKind
	arg  string
}

// parseInput recognises /join <target>, /leave and /me <text>. Anything
// else, including unknown slash commands, is sent as text.
func parseInput(line string) inputCommand {
	text := strings.TrimSpace(line)
	switch {
	case text == "":
		return inputCommand{kind: inputNone}
	case strings.HasPrefix(text, "/join "):
		target := strings.TrimSpace(text[len("/join "):])
		if target == "" {
			return inputCommand{kind: inputNone}
		}
		return inputCommand{kind: inputJoin, arg: target}
	case text == "/leave":
		return inputCommand{kind: inputLeave}
	case strings.HasPrefix(text, "/me "):
		body := strings.TrimSpace(text[len("/me "):])
		if body == "" {
			return inputCommand{kind: inputNone}
		}
		return inputCommand{kind: inputEmote, arg: body}
	default:
		return inputCommand{kind: inputText, arg: text}
	}
}

// waitForChanges blocks until the engine reports a state change.
func waitForChanges(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return engineChangedMsg{}
	}
}

var writeClipboard = clipboard.WriteAll

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
