// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"slices"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/Julien-Turcotte/myMatrix/models"
)

// projectTimeline maps a live timeline to render records. Only message,
// membership and encrypted events are kept, in protocol order. The result
// is a fresh slice and is never merged with a previous projection.
func projectTimeline(events []adapter.TimelineEvent) []models.MessageRecord {
	out := make([]models.MessageRecord, 0, len(events))
	for _, ev := range events {
		mt, ok := models.MessageTypeOf(ev.Type)
		if !ok {
			continue
		}
		out = append(out, models.MessageRecord{
			ID:                  ev.ID,
			Type:                mt,
			EventType:           ev.Type,
			Sender:              ev.Sender,
			Content:             ev.Content,
			Timestamp:           ev.Timestamp,
			IsLocal:             ev.Status != "",
			IsDecryptionFailure: ev.DecryptionFailure,
		})
	}
	return out
}

// summarizeRooms builds the room list ordered by last activity, newest
// first. Rooms with equal timestamps keep their input order.
func summarizeRooms(rooms []adapter.Room) []models.RoomSummary {
	out := make([]models.RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		if r == nil {
			continue
		}
		out = append(out, models.RoomSummary{
			RoomID:       r.RoomID(),
			DisplayName:  r.DisplayName(),
			LastActiveTS: max(r.LastActiveTimestamp(), 0),
			Encrypted:    r.IsEncrypted(),
			IsDirect:     r.IsDirectMessage(),
			UnreadCount:  r.UnreadNotificationCount(),
		})
	}

	slices.SortStableFunc(out, func(a, b models.RoomSummary) int {
		return cmp.Compare(b.LastActiveTS, a.LastActiveTS)
	})
	return out
}
