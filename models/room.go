// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RoomSummary is the render-ready projection of a joined room used by the
// room list. A room list is always ordered by LastActiveTS, newest first.
type RoomSummary struct {
	// RoomID is the unique Matrix room identifier (e.g. "!abc:matrix.org").
	RoomID string `json:"room_id"`

	// DisplayName is the computed human-readable name. May be empty, in
	// which case consumers fall back to RoomID.
	DisplayName string `json:"display_name,omitempty"`

	// LastActiveTS is the origin timestamp (ms) of the newest timeline
	// entry, or 0 if the room has no timeline yet.
	LastActiveTS int64 `json:"last_active_ts"`

	// Encrypted is true when the room has m.room.encryption state.
	Encrypted bool `json:"encrypted"`

	// IsDirect is true for direct-message rooms.
	IsDirect bool `json:"is_direct"`

	// UnreadCount is the server-side notification count, never negative.
	UnreadCount int `json:"unread_count"`
}

// Name returns DisplayName, or RoomID when no name is known.
func (r RoomSummary) Name() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.RoomID
}
