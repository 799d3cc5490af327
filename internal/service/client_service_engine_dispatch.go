// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
)

// transition applies one session event to the engine state. Transitions
// run with e.mu held and must not block.
type transition func(e *syncEngine, session adapter.Session, generation uint64, ev adapter.Event)

var transitions = map[adapter.EventKind]transition{
	adapter.EventSync:                (*syncEngine).onSync,
	adapter.EventTimeline:            (*syncEngine).onTimeline,
	adapter.EventRoomAdded:           (*syncEngine).onRoomAdded,
	adapter.EventTyping:              (*syncEngine).onTyping,
	adapter.EventDecryptionCompleted: (*syncEngine).onDecryptionCompleted,
}

// subscribe registers one handler per event kind, bound to session and
// generation, and returns the unsubscribe functions.
func (e *syncEngine) subscribe(session adapter.Session, generation uint64) []func() {
	kinds := []adapter.EventKind{
		adapter.EventSync,
		adapter.EventTimeline,
		adapter.EventRoomAdded,
		adapter.EventTyping,
		adapter.EventDecryptionCompleted,
	}

	unsubscribe := make([]func(), 0, len(kinds))
	for _, kind := range kinds {
		unsubscribe = append(unsubscribe, session.Subscribe(kind, func(ev adapter.Event) {
			e.dispatch(session, generation, ev)
		}))
	}
	return unsubscribe
}

func (e *syncEngine) dispatch(session adapter.Session, generation uint64, ev adapter.Event) {
	fn, ok := transitions[ev.Kind]
	if !ok {
		return
	}

	e.mu.Lock()
	if e.generation != generation {
		e.mu.Unlock()
		return
	}
	fn(e, session, generation, ev)
	e.mu.Unlock()

	e.notify()
}

func (e *syncEngine) onSync(session adapter.Session, _ uint64, ev adapter.Event) {
	e.status = ev.SyncStatus
	if ev.SyncStatus.IsLive() {
		e.recomputeRoomsLocked(session)
	}
}

func (e *syncEngine) onTimeline(session adapter.Session, _ uint64, ev adapter.Event) {
	e.recomputeRoomsLocked(session)
	if ev.Room != nil {
		e.projectLocked(session, ev.Room.RoomID())
	}
}

func (e *syncEngine) onRoomAdded(session adapter.Session, _ uint64, _ adapter.Event) {
	e.recomputeRoomsLocked(session)
}

func (e *syncEngine) onTyping(_ adapter.Session, _ uint64, ev adapter.Event) {
	m := ev.Typing
	if m.RoomID == "" || m.UserID == "" {
		return
	}

	users := e.typing[m.RoomID]
	if m.Typing {
		if users == nil {
			users = make(map[string]struct{})
			e.typing[m.RoomID] = users
		}
		users[m.UserID] = struct{}{}
		return
	}

	delete(users, m.UserID)
	if len(users) == 0 {
		delete(e.typing, m.RoomID)
	}
}

func (e *syncEngine) onDecryptionCompleted(session adapter.Session, generation uint64, ev adapter.Event) {
	if ev.Timeline == nil || ev.Timeline.RoomID == "" {
		return
	}

	roomID := ev.Timeline.RoomID
	e.debouncer.Schedule(roomID, func() {
		e.mu.Lock()
		if e.generation != generation {
			e.mu.Unlock()
			return
		}
		e.projectLocked(session, roomID)
		e.mu.Unlock()

		e.notify()
	})
}

// recomputeRoomsLocked rebuilds the room list from scratch.
func (e *syncEngine) recomputeRoomsLocked(session adapter.Session) {
	e.rooms = summarizeRooms(session.Rooms())
}

// projectLocked replaces the projected timeline of roomID and returns the
// ID of the newest raw timeline entry. Unknown rooms are left untouched.
func (e *syncEngine) projectLocked(session adapter.Session, roomID string) (newest string) {
	room, ok := session.Room(roomID)
	if !ok || room == nil {
		return ""
	}

	events := room.LiveTimelineEvents()
	e.timelines[roomID] = projectTimeline(events)
	if len(events) > 0 {
		newest = events[len(events)-1].ID
	}
	return newest
}
