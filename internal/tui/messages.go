// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// NavigateTo switches the root model to another page. Payload, when set,
// is delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Err error
}

type engineChangedMsg struct{}

type logoutDoneMsg struct{}

// actionDoneMsg reports the outcome of a room command. selectRoomID is
// selected on success when non-empty.
type actionDoneMsg struct {
	action       string
	selectRoomID string
	err          error
}

type roomCreatedMsg struct {
	roomID string
	err    error
}

type typingIdleMsg struct {
	seq int
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
