// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is a copy of the engine's derived state, handed to the
// rendering layer. Mutating it does not affect the engine.
type Snapshot struct {
	// UserID is the logged-in user, empty when disconnected.
	UserID string

	// Connected is true once a session has been started and published.
	Connected bool

	// SyncStatus is the latest status reported by the session.
	SyncStatus SyncStatus

	// Rooms is the room list ordered by LastActiveTS, newest first.
	Rooms []RoomSummary

	// ActiveRoomID is the selected room, or "" when none is selected.
	ActiveRoomID string

	// Timelines holds the per-room message projections.
	Timelines map[string][]MessageRecord

	// Typing holds the sorted user IDs currently typing, per room.
	Typing map[string][]string

	// LastError is the last recorded authentication error, or nil.
	LastError error
}

// ActiveRoom returns the summary of the selected room, if it is still in
// the room list.
func (s Snapshot) ActiveRoom() (RoomSummary, bool) {
	if s.ActiveRoomID == "" {
		return RoomSummary{}, false
	}
	for _, r := range s.Rooms {
		if r.RoomID == s.ActiveRoomID {
			return r, true
		}
	}
	return RoomSummary{}, false
}
