// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/Julien-Turcotte/myMatrix/internal/utils"
)

// maxTimelineEvents bounds the in-memory live timeline of a room.
const maxTimelineEvents = 500

type roomMember struct {
	DisplayName string
	Membership  string
}

// matrixRoom is the locally accumulated state of one joined room. It is
// written by the sync goroutine and the send path, and read by the engine.
type matrixRoom struct {
	id        string
	ownUserID string

	mu             sync.RWMutex
	name           string
	canonicalAlias string
	encrypted      bool
	direct         bool
	unread         int
	members        map[string]roomMember
	timeline       []TimelineEvent
}

var _ Room = (*matrixRoom)(nil)

func newMatrixRoom(id, ownUserID string) *matrixRoom {
	return &matrixRoom{
		id:        id,
		ownUserID: ownUserID,
		members:   make(map[string]roomMember),
	}
}

func (r *matrixRoom) RoomID() string { return r.id }

// DisplayName follows the usual naming order: explicit name, canonical
// alias, then the other members' names.
func (r *matrixRoom) DisplayName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.name != "" {
		return r.name
	}
	if r.canonicalAlias != "" {
		return r.canonicalAlias
	}

	var others []string
	for userID, m := range r.members {
		if userID == r.ownUserID {
			continue
		}
		if m.Membership != membershipJoin && m.Membership != membershipInvite {
			continue
		}
		name := m.DisplayName
		if name == "" {
			name = userID
		}
		others = append(others, name)
	}
	if len(others) == 0 {
		return ""
	}
	sort.Strings(others)
	if len(others) > 2 {
		return others[0] + ", " + others[1] + " and others"
	}
	return strings.Join(others, " and ")
}

func (r *matrixRoom) LastActiveTimestamp() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.timeline) == 0 {
		return 0
	}
	return r.timeline[len(r.timeline)-1].Timestamp
}

func (r *matrixRoom) LiveTimelineEvents() []TimelineEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.timeline)
}

func (r *matrixRoom) UnreadNotificationCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.unread
}

func (r *matrixRoom) IsDirectMessage() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.direct
}

func (r *matrixRoom) IsEncrypted() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.encrypted
}

func (r *matrixRoom) setDirect(direct bool) {
	r.mu.Lock()
	r.direct = direct
	r.mu.Unlock()
}

func (r *matrixRoom) setUnread(n int) {
	r.mu.Lock()
	r.unread = n
	r.mu.Unlock()
}

// applyState folds a state event into the room summary.
func (r *matrixRoom) applyState(ev clientEvent) {
	if ev.StateKey == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch ev.Type {
	case eventTypeName:
		r.name = contentString(ev.Content, "name")
	case eventTypeCanonicalAlias:
		r.canonicalAlias = contentString(ev.Content, "alias")
	case eventTypeEncryption:
		r.encrypted = true
	case eventTypeMember:
		r.members[*ev.StateKey] = roomMember{
			DisplayName: contentString(ev.Content, "displayname"),
			Membership:  contentString(ev.Content, "membership"),
		}
	}
}

// resetTimeline drops confirmed history after a limited sync, keeping
// unconfirmed local echoes.
func (r *matrixRoom) resetTimeline() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.timeline = slices.DeleteFunc(r.timeline, func(ev TimelineEvent) bool {
		return ev.Status == ""
	})
}

// appendRemote adds a server event to the live timeline. A matching local
// echo is replaced in place. Duplicates are dropped and reported as
// not added.
func (r *matrixRoom) appendRemote(ev clientEvent) (TimelineEvent, bool) {
	te := toTimelineEvent(r.id, ev)

	r.mu.Lock()
	defer r.mu.Unlock()

	if txn := ev.Unsigned.TransactionID; txn != "" {
		if i := r.indexOfLocked(localEchoID(txn)); i >= 0 {
			r.timeline[i] = te
			return te, true
		}
	}
	if i := r.indexOfLocked(te.ID); te.ID != "" && i >= 0 {
		// A sent echo already carries the server ID; the remote copy
		// confirms it.
		if r.timeline[i].Status != "" {
			r.timeline[i] = te
			return te, true
		}
		return te, false
	}

	r.timeline = append(r.timeline, te)
	if over := len(r.timeline) - maxTimelineEvents; over > 0 {
		r.timeline = slices.Delete(r.timeline, 0, over)
	}
	return te, true
}

func (r *matrixRoom) appendLocal(te TimelineEvent) {
	r.mu.Lock()
	r.timeline = append(r.timeline, te)
	r.mu.Unlock()
}

// updateLocal applies fn to the event with the given id, if still present.
func (r *matrixRoom) updateLocal(id string, fn func(*TimelineEvent)) (TimelineEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfLocked(id)
	if i < 0 {
		return TimelineEvent{}, false
	}
	fn(&r.timeline[i])
	return r.timeline[i], true
}

func (r *matrixRoom) indexOfLocked(id string) int {
	return slices.IndexFunc(r.timeline, func(ev TimelineEvent) bool {
		return ev.ID == id
	})
}

func localEchoID(txnID string) string {
	return "~" + txnID
}

func toTimelineEvent(roomID string, ev clientEvent) TimelineEvent {
	return TimelineEvent{
		ID:                ev.EventID,
		RoomID:            roomID,
		Type:              ev.Type,
		Sender:            ev.Sender,
		Content:           ev.Content,
		Timestamp:         ev.OriginServerTS,
		DecryptionFailure: ev.Type == eventTypeEncrypted,
	}
}

// parseDirectContent decodes m.direct account data content
// ({"@user:server": ["!room:server", ...]}). Malformed entries are skipped.
func parseDirectContent(content map[string]any) map[string][]string {
	direct := make(map[string][]string, len(content))
	for userID, v := range content {
		if !utils.IsUserID(userID) {
			continue
		}
		rooms, ok := v.([]any)
		if !ok {
			continue
		}
		for _, id := range rooms {
			if roomID, ok := id.(string); ok {
				direct[userID] = append(direct[userID], roomID)
			}
		}
	}
	return direct
}
