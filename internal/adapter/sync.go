// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/Julien-Turcotte/myMatrix/models"
)

const defaultTimelineLimit = 50

// syncLoop long-polls /sync until ctx is cancelled. The first successful
// response publishes PREPARED, later ones SYNCING. A failure publishes
// ERROR and retries after the configured delay.
func (s *matrixSession) syncLoop(ctx context.Context, opts StartOptions) {
	limit := opts.InitialSyncLimit
	if limit <= 0 {
		limit = defaultTimelineLimit
	}
	filter := fmt.Sprintf(`{"room":{"timeline":{"limit":%d}}}`, limit)

	var since string
	prepared := false

	for {
		resp, err := s.syncOnce(ctx, since, filter)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("sync request failed")
			s.emit(Event{Kind: EventSync, SyncStatus: models.SyncError})
			if !sleepCtx(ctx, s.cfg.SyncRetryDelay) {
				return
			}
			continue
		}

		s.applySync(resp)
		since = resp.NextBatch

		status := models.SyncSyncing
		if !prepared {
			status = models.SyncPrepared
			prepared = true
		}
		s.emit(Event{Kind: EventSync, SyncStatus: status})
	}
}

// syncOnce performs a single /sync request. The initial request does not
// long-poll so the first snapshot arrives immediately.
func (s *matrixSession) syncOnce(ctx context.Context, since, filter string) (syncResponse, error) {
	pollTimeout := s.cfg.SyncTimeout
	if since == "" {
		pollTimeout = 0
	}

	ctx, cancel := context.WithTimeout(ctx, pollTimeout+s.cfg.RequestTimeout)
	defer cancel()

	params := map[string]string{
		"filter":  filter,
		"timeout": strconv.FormatInt(pollTimeout.Milliseconds(), 10),
	}
	if since != "" {
		params["since"] = since
	}

	var out syncResponse
	resp, err := s.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get(clientAPIPrefix + "/sync")
	if err != nil {
		return syncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return syncResponse{}, err
	}

	return out, nil
}

// applySync folds a sync response into the room store and publishes the
// resulting room-added, timeline and typing events.
func (s *matrixSession) applySync(resp syncResponse) {
	for _, ev := range resp.AccountData.Events {
		if ev.Type == eventTypeDirect {
			s.applyDirect(ev.Content)
		}
	}

	for _, roomID := range slices.Sorted(maps.Keys(resp.Rooms.Leave)) {
		s.forgetRoom(roomID)
	}

	for _, roomID := range slices.Sorted(maps.Keys(resp.Rooms.Join)) {
		s.applyJoinedRoom(roomID, resp.Rooms.Join[roomID])
	}
}

func (s *matrixSession) applyJoinedRoom(roomID string, jr joinedRoom) {
	room, created := s.ensureRoom(roomID)

	for _, ev := range jr.State.Events {
		room.applyState(ev)
	}
	room.setUnread(jr.UnreadNotifications.NotificationCount)

	if created {
		s.emit(Event{Kind: EventRoomAdded, Room: room})
	} else if jr.Timeline.Limited {
		room.resetTimeline()
	}

	for _, ev := range jr.Timeline.Events {
		room.applyState(ev)
		te, added := room.appendRemote(ev)
		if !added {
			continue
		}
		s.emit(Event{Kind: EventTimeline, Timeline: &te, Room: room})
	}

	for _, ev := range jr.Ephemeral.Events {
		if ev.Type != eventTypeTyping {
			continue
		}
		for _, change := range s.applyTyping(roomID, typingUserIDs(ev.Content)) {
			s.emit(Event{Kind: EventTyping, Typing: change})
		}
	}
}

// applyTyping replaces the typing set of a room and returns one change per
// member whose state flipped, in user ID order.
func (s *matrixSession) applyTyping(roomID string, userIDs []string) []TypingMember {
	next := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		next[id] = struct{}{}
	}

	s.roomsMu.Lock()
	prev := s.typing[roomID]
	s.typing[roomID] = next
	s.roomsMu.Unlock()

	var changes []TypingMember
	for _, id := range slices.Sorted(maps.Keys(next)) {
		if _, was := prev[id]; !was {
			changes = append(changes, TypingMember{RoomID: roomID, UserID: id, Typing: true})
		}
	}
	for _, id := range slices.Sorted(maps.Keys(prev)) {
		if _, still := next[id]; !still {
			changes = append(changes, TypingMember{RoomID: roomID, UserID: id, Typing: false})
		}
	}
	return changes
}

func (s *matrixSession) applyDirect(content map[string]any) {
	direct := parseDirectContent(content)

	s.roomsMu.Lock()
	s.directContent = direct
	rooms := make([]*matrixRoom, 0, len(s.rooms))
	flags := make([]bool, 0, len(s.rooms))
	for _, r := range s.rooms {
		rooms = append(rooms, r)
		flags = append(flags, s.isDirectLocked(r.id))
	}
	s.roomsMu.Unlock()

	for i, r := range rooms {
		r.setDirect(flags[i])
	}
}

func typingUserIDs(content map[string]any) []string {
	raw, ok := content["user_ids"].([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
