// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the session-layer abstraction between the sync
// engine and a Matrix homeserver.
//
// The engine only talks to [SessionFactory], [Session] and [Room]. The
// package ships one implementation backed by the Matrix client-server API
// over resty ([NewMatrixSessionFactory]). A session owns its long-poll
// sync loop and publishes what it learns as [Event] values to handlers
// registered with Session.Subscribe.
//
// Transport failures are returned as [*MatrixError] when the homeserver
// answered with a Matrix error body, and wrap the sentinels in errors.go so
// callers can use errors.Is regardless of the body.
package adapter

import (
	"context"
	"time"

	"github.com/Julien-Turcotte/myMatrix/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// SessionConfig configures a new session. An empty AccessToken yields an
// unauthenticated session that can only exchange credentials.
type SessionConfig struct {
	BaseURL     string
	UserID      string
	AccessToken string
	DeviceID    string
}

// LoginResponse is the result of a credential exchange.
type LoginResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	DeviceID    string `json:"device_id"`
}

// StartOptions tunes the session's sync loop.
type StartOptions struct {
	// InitialSyncLimit caps the number of timeline events per room
	// requested by every sync.
	InitialSyncLimit int
}

// CreateRoomRequest is the body of a room creation call.
type CreateRoomRequest struct {
	Name     string   `json:"name,omitempty"`
	Preset   string   `json:"preset,omitempty"`
	Invite   []string `json:"invite,omitempty"`
	IsDirect bool     `json:"is_direct,omitempty"`
}

// Room presets used by CreateRoomRequest.
const (
	PresetPrivateChat        = "private_chat"
	PresetTrustedPrivateChat = "trusted_private_chat"
)

// Pending-send statuses carried by local echoes in TimelineEvent.Status.
const (
	StatusSending = "sending"
	StatusNotSent = "not_sent"
)

// TimelineEvent is one entry of a room's live timeline.
type TimelineEvent struct {
	ID        string
	RoomID    string
	Type      string
	Sender    string
	Content   map[string]any
	Timestamp int64

	// Status is non-empty while the event is a local echo that the
	// server has not confirmed yet.
	Status string

	// DecryptionFailure is true when the event could not be decrypted.
	DecryptionFailure bool
}

// TypingMember is a single member's typing state change.
type TypingMember struct {
	RoomID string
	UserID string
	Typing bool
}

// EventKind names the events a session publishes.
type EventKind string

const (
	EventSync                EventKind = "sync"
	EventTimeline            EventKind = "timeline"
	EventRoomAdded           EventKind = "room-added"
	EventTyping              EventKind = "typing"
	EventDecryptionCompleted EventKind = "decryption-completed"
)

// Event is a single notification published by a session. Only the fields
// relevant to Kind are populated:
//
//   - EventSync: SyncStatus
//   - EventTimeline: Timeline, Room (Room may be nil)
//   - EventRoomAdded: Room
//   - EventTyping: Typing
//   - EventDecryptionCompleted: Timeline
type Event struct {
	Kind       EventKind
	SyncStatus models.SyncStatus
	Timeline   *TimelineEvent
	Room       Room
	Typing     TypingMember
}

// EventHandler receives session events. Handlers are called from the
// session's sync goroutine and must not block for long.
type EventHandler func(Event)

// SessionFactory creates sessions for a homeserver.
type SessionFactory interface {
	// NewSession builds a session for cfg without any network traffic.
	NewSession(cfg SessionConfig) (Session, error)
}

// Session is an authenticated (or, before login, unauthenticated)
// connection to a homeserver.
type Session interface {
	// UserID returns the fully-qualified user ID of the session, or ""
	// for an unauthenticated session.
	UserID() string

	// ExchangeCredentials performs a password login and returns the
	// credentials of a new device. The receiving session is not changed.
	ExchangeCredentials(ctx context.Context, userID, password string) (LoginResponse, error)

	// Start launches the background sync loop. It returns once the loop
	// is running; sync progress is reported through EventSync.
	Start(ctx context.Context, opts StartOptions) error

	// Stop terminates the sync loop and blocks until it has exited.
	// Safe to call more than once.
	Stop()

	// LogoutRemote invalidates the access token on the homeserver.
	LogoutRemote(ctx context.Context) error

	// Rooms returns every joined room known locally.
	Rooms() []Room

	// Room returns a joined room by ID.
	Room(roomID string) (Room, bool)

	// SendText sends an m.text message and returns the event ID.
	SendText(ctx context.Context, roomID, text string) (string, error)

	// SendEmote sends an m.emote message and returns the event ID.
	SendEmote(ctx context.Context, roomID, text string) (string, error)

	// SendTyping publishes the user's typing state for ttl.
	SendTyping(ctx context.Context, roomID string, typing bool, ttl time.Duration) error

	// SendReadReceipt marks eventID as read in roomID.
	SendReadReceipt(ctx context.Context, roomID, eventID string) error

	// JoinRoom joins a room by ID or alias and returns the room ID.
	JoinRoom(ctx context.Context, roomIDOrAlias string) (string, error)

	// LeaveRoom leaves a room and forgets it locally.
	LeaveRoom(ctx context.Context, roomID string) error

	// CreateRoom creates a room and returns its ID. The room becomes
	// available through Room once the next sync has delivered it.
	CreateRoom(ctx context.Context, req CreateRoomRequest) (string, error)

	// Subscribe registers fn for events of the given kind and returns a
	// function that removes the registration.
	Subscribe(kind EventKind, fn EventHandler) (unsubscribe func())
}

// Room is a read-only view of a joined room.
type Room interface {
	// RoomID returns the room identifier.
	RoomID() string

	// DisplayName returns the computed room name, or "" if none is known.
	DisplayName() string

	// LastActiveTimestamp returns the origin timestamp (ms) of the newest
	// timeline entry, or 0.
	LastActiveTimestamp() int64

	// LiveTimelineEvents returns a copy of the live timeline in protocol
	// order.
	LiveTimelineEvents() []TimelineEvent

	// UnreadNotificationCount returns the server-side notification count.
	UnreadNotificationCount() int

	// IsDirectMessage reports whether the room is a direct conversation.
	IsDirectMessage() bool

	// IsEncrypted reports whether the room has encryption enabled.
	IsEncrypted() bool
}
