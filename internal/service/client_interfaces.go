// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/Julien-Turcotte/myMatrix/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/engine_mock.go -package=mock

// ClientSyncEngine defines the client-side contract of the sync and state
// projection engine. It owns at most one session at a time, turns the
// session's asynchronous events into a consistent [models.Snapshot], and
// forwards user commands to the session.
//
// All methods are safe for concurrent use. State changes are announced on
// the channel returned by Changes; consumers then call Snapshot.
type ClientSyncEngine interface {
	// Login validates creds, opens a session (exchanging the password for
	// an access token when no token is given), subscribes to its events and
	// starts syncing. Malformed credentials return ErrValidation and are
	// not recorded. Exchange and start failures return ErrAuth and are
	// recorded as the snapshot's LastError.
	Login(ctx context.Context, creds models.Credentials) error

	// Logout releases the session, resets all derived state to its initial
	// values and invalidates the access token on the homeserver. A failing
	// remote logout is logged only. Calling Logout without a session only
	// resets state.
	Logout(ctx context.Context)

	// Close releases the session and resets state like Logout but keeps
	// the access token valid. Used on process exit.
	Close()

	// SelectRoom makes roomID the active room, re-projects its timeline and
	// sends a best-effort read receipt for its newest event. The active
	// room is set even when roomID is unknown.
	SelectRoom(ctx context.Context, roomID string)

	// SendMessage sends text as an m.text message. Blank text or a missing
	// session make it a no-op. Transport failures return ErrTransport.
	SendMessage(ctx context.Context, roomID, text string) error

	// SendEmote sends text as an m.emote message, with the same rules as
	// SendMessage.
	SendEmote(ctx context.Context, roomID, text string) error

	// JoinRoom joins a room by ID or alias, refreshes the room list and
	// returns the joined room ID.
	JoinRoom(ctx context.Context, roomIDOrAlias string) (string, error)

	// LeaveRoom leaves roomID and refreshes the room list. Leaving the
	// active room clears the active room.
	LeaveRoom(ctx context.Context, roomID string) error

	// CreateRoom creates a named room or a direct conversation and waits
	// for it to appear locally. Invalid options return ErrValidation before
	// any request is made. A room that does not appear in time is logged
	// and its ID is still returned.
	CreateRoom(ctx context.Context, opts models.CreateRoomOptions) (string, error)

	// SendTyping publishes the user's typing state in roomID without
	// blocking. Failures are logged only.
	SendTyping(roomID string, typing bool)

	// UnreadCount returns the notification count of roomID, or 0.
	UnreadCount(roomID string) int

	// Snapshot returns a copy of the current state.
	Snapshot() models.Snapshot

	// Changes returns a channel that receives a value after state changes.
	// Notifications coalesce: one pending value stands for any number of
	// changes.
	Changes() <-chan struct{}
}
