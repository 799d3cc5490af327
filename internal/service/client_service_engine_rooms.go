// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/Julien-Turcotte/myMatrix/models"
)

// SelectRoom implements ClientSyncEngine.
func (e *syncEngine) SelectRoom(ctx context.Context, roomID string) {
	e.mu.Lock()
	e.activeRoomID = roomID
	session, gen := e.session, e.generation
	var newest string
	if session != nil {
		newest = e.projectLocked(session, roomID)
	}
	e.mu.Unlock()

	e.notify()

	if session != nil && newest != "" {
		e.tracker.MarkRead(ctx, gen, session, roomID, newest)
	}
}

// SendMessage implements ClientSyncEngine.
func (e *syncEngine) SendMessage(ctx context.Context, roomID, text string) error {
	return e.send(ctx, roomID, text, adapter.Session.SendText)
}

// SendEmote implements ClientSyncEngine.
func (e *syncEngine) SendEmote(ctx context.Context, roomID, text string) error {
	return e.send(ctx, roomID, text, adapter.Session.SendEmote)
}

type sendFunc func(s adapter.Session, ctx context.Context, roomID, text string) (string, error)

func (e *syncEngine) send(ctx context.Context, roomID, text string, fn sendFunc) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	session, _ := e.current()
	if session == nil {
		return nil
	}

	if _, err := fn(session, ctx, roomID, text); err != nil {
		return fmt.Errorf("%w: send to %s: %w", ErrTransport, roomID, err)
	}
	return nil
}

// JoinRoom implements ClientSyncEngine.
func (e *syncEngine) JoinRoom(ctx context.Context, roomIDOrAlias string) (string, error) {
	target := strings.TrimSpace(roomIDOrAlias)
	if target == "" {
		return "", fmt.Errorf("%w: %w", ErrValidation, ErrValidationNoRoomIDOrAlias)
	}
	session, gen := e.current()
	if session == nil {
		return "", ErrNotConnected
	}

	roomID, err := session.JoinRoom(ctx, target)
	if err != nil {
		return "", fmt.Errorf("%w: join %s: %w", ErrTransport, target, err)
	}

	e.refreshRooms(session, gen, nil)
	return roomID, nil
}

// LeaveRoom implements ClientSyncEngine.
func (e *syncEngine) LeaveRoom(ctx context.Context, roomID string) error {
	session, gen := e.current()
	if session == nil {
		return ErrNotConnected
	}

	if err := session.LeaveRoom(ctx, roomID); err != nil {
		return fmt.Errorf("%w: leave %s: %w", ErrTransport, roomID, err)
	}

	e.debouncer.Cancel(roomID)
	e.refreshRooms(session, gen, func() {
		if e.activeRoomID == roomID {
			e.activeRoomID = ""
		}
		delete(e.timelines, roomID)
		delete(e.typing, roomID)
	})
	return nil
}

// CreateRoom implements ClientSyncEngine.
func (e *syncEngine) CreateRoom(ctx context.Context, opts models.CreateRoomOptions) (string, error) {
	req, err := buildCreateRoomRequest(opts)
	if err != nil {
		return "", err
	}
	session, gen := e.current()
	if session == nil {
		return "", ErrNotConnected
	}

	roomID, err := session.CreateRoom(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: create room: %w", ErrTransport, err)
	}

	if _, err = waitForRoom(ctx, session, roomID, e.opts.RoomWaitTimeout, e.opts.RoomWaitInterval); err != nil {
		ev := e.logger.Warn()
		if !errors.Is(err, ErrTimeout) {
			ev = e.logger.Error()
		}
		ev.Err(err).Str("room_id", roomID).Msg("created room did not appear locally")
	}

	e.refreshRooms(session, gen, nil)
	return roomID, nil
}

// SendTyping implements ClientSyncEngine.
func (e *syncEngine) SendTyping(roomID string, typing bool) {
	session, gen := e.current()
	if session == nil || roomID == "" {
		return
	}
	e.tracker.SendTyping(context.Background(), gen, session, roomID, typing)
}

// UnreadCount implements ClientSyncEngine.
func (e *syncEngine) UnreadCount(roomID string) int {
	session, _ := e.current()
	if session == nil {
		return 0
	}
	room, ok := session.Room(roomID)
	if !ok || room == nil {
		return 0
	}
	return room.UnreadNotificationCount()
}

// refreshRooms recomputes the room list after a command, applying extra
// under the same lock. Nothing happens if the session changed meanwhile.
func (e *syncEngine) refreshRooms(session adapter.Session, generation uint64, extra func()) {
	e.mu.Lock()
	if e.generation != generation {
		e.mu.Unlock()
		return
	}
	e.recomputeRoomsLocked(session)
	if extra != nil {
		extra()
	}
	e.mu.Unlock()

	e.notify()
}
