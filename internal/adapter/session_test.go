// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/Julien-Turcotte/myMatrix/internal/logger"
	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initialSyncBody = `{
  "next_batch": "s1",
  "account_data": {"events": [
    {"type": "m.direct", "content": {"@bob:x.org": ["!dm:x.org"]}}
  ]},
  "rooms": {"join": {
    "!r1:x.org": {
      "state": {"events": [
        {"type": "m.room.name", "state_key": "", "sender": "@a:x.org", "content": {"name": "General"}},
        {"type": "m.room.encryption", "state_key": "", "sender": "@a:x.org", "content": {"algorithm": "m.megolm.v1.aes-sha2"}}
      ]},
      "timeline": {"events": [
        {"event_id": "$1", "type": "m.room.message", "sender": "@b:x.org", "origin_server_ts": 100, "content": {"msgtype": "m.text", "body": "hi"}},
        {"event_id": "$2", "type": "m.room.encrypted", "sender": "@b:x.org", "origin_server_ts": 200, "content": {"algorithm": "m.megolm.v1.aes-sha2"}}
      ]},
      "ephemeral": {"events": [
        {"type": "m.typing", "content": {"user_ids": ["@b:x.org"]}}
      ]},
      "unread_notifications": {"notification_count": 3}
    },
    "!dm:x.org": {
      "state": {"events": [
        {"type": "m.room.member", "state_key": "@bob:x.org", "sender": "@bob:x.org", "content": {"membership": "join", "displayname": "Bob"}},
        {"type": "m.room.member", "state_key": "@a:x.org", "sender": "@a:x.org", "content": {"membership": "join"}}
      ]}
    }
  }}
}`

// eventRecorder collects session events for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) handle(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) byKind(kind EventKind) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func (r *eventRecorder) hasStatus(status models.SyncStatus) bool {
	for _, ev := range r.byKind(EventSync) {
		if ev.SyncStatus == status {
			return true
		}
	}
	return false
}

func subscribeAll(s Session, rec *eventRecorder) {
	for _, kind := range []EventKind{EventSync, EventTimeline, EventRoomAdded, EventTyping, EventDecryptionCompleted} {
		s.Subscribe(kind, rec.handle)
	}
}

func pathParam(t *testing.T, r *http.Request, name string) string {
	t.Helper()
	v, err := url.PathUnescape(chi.URLParam(r, name))
	require.NoError(t, err)
	return v
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// syncRoutes answers the first /sync with initialSyncBody and later ones
// with an empty batch after a short poll.
func syncRoutes(r chi.Router) {
	r.Get("/_matrix/client/v3/sync", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("since") == "" {
			writeJSON(w, http.StatusOK, initialSyncBody)
			return
		}
		select {
		case <-req.Context().Done():
			return
		case <-time.After(20 * time.Millisecond):
		}
		writeJSON(w, http.StatusOK, `{"next_batch":"s2"}`)
	})
}

func newTestSession(t *testing.T, serverURL, token string) *matrixSession {
	t.Helper()
	f := NewMatrixSessionFactory(MatrixConfig{
		RequestTimeout: 2 * time.Second,
		SyncTimeout:    100 * time.Millisecond,
		SyncRetryDelay: 20 * time.Millisecond,
	}, logger.Nop())

	s, err := f.NewSession(SessionConfig{BaseURL: serverURL, UserID: "@a:x.org", AccessToken: token, DeviceID: "DEV"})
	require.NoError(t, err)
	return s.(*matrixSession)
}

func startSynced(t *testing.T, s *matrixSession, rec *eventRecorder) {
	t.Helper()
	subscribeAll(s, rec)
	require.NoError(t, s.Start(context.Background(), StartOptions{InitialSyncLimit: 20}))
	t.Cleanup(s.Stop)
	require.Eventually(t, func() bool { return rec.hasStatus(models.SyncPrepared) }, 2*time.Second, 5*time.Millisecond)
}

// ── NewSession ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" matrix.org/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://matrix.org", got)

	got, err = normalizeBaseURL("http://localhost:8008")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8008", got)

	_, err = normalizeBaseURL("")
	assert.ErrorIs(t, err, ErrEmptyBaseURL)
}

func TestNewSession_InvalidURL(t *testing.T) {
	f := NewMatrixSessionFactory(MatrixConfig{}, nil)
	_, err := f.NewSession(SessionConfig{})
	assert.ErrorIs(t, err, ErrEmptyBaseURL)
}

// ── ExchangeCredentials ─────────────────────────────────────────────────────

func TestExchangeCredentials_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/_matrix/client/v3/login", func(w http.ResponseWriter, req *http.Request) {
		var body loginRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, loginTypePassword, body.Type)
		assert.Equal(t, identifierUser, body.Identifier.Type)
		assert.Equal(t, "@a:x.org", body.Identifier.User)
		assert.Equal(t, "secret", body.Password)
		assert.Empty(t, req.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, `{"user_id":"@a:x.org","access_token":"tok","device_id":"D1"}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "")
	got, err := s.ExchangeCredentials(context.Background(), "@a:x.org", "secret")

	require.NoError(t, err)
	assert.Equal(t, LoginResponse{UserID: "@a:x.org", AccessToken: "tok", DeviceID: "D1"}, got)
}

func TestExchangeCredentials_Forbidden(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/_matrix/client/v3/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"errcode":"M_FORBIDDEN","error":"Invalid password"}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "")
	_, err := s.ExchangeCredentials(context.Background(), "@a:x.org", "bad")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.True(t, IsMatrixError(err, ErrCodeForbidden))

	var me *MatrixError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, http.StatusForbidden, me.StatusCode)
	assert.Equal(t, "Invalid password", me.Message)
}

// ── Start / Stop ────────────────────────────────────────────────────────────

func TestStart_RequiresToken(t *testing.T) {
	s := newTestSession(t, "http://127.0.0.1:1", "")
	assert.ErrorIs(t, s.Start(context.Background(), StartOptions{}), ErrNotAuthenticated)
}

func TestStart_Twice(t *testing.T) {
	r := chi.NewRouter()
	syncRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	require.NoError(t, s.Start(context.Background(), StartOptions{}))
	defer s.Stop()

	assert.ErrorIs(t, s.Start(context.Background(), StartOptions{}), ErrAlreadyStarted)
}

func TestStop_Idempotent(t *testing.T) {
	s := newTestSession(t, "http://127.0.0.1:1", "tok")
	s.Stop()
	s.Stop()
}

// ── Sync processing ─────────────────────────────────────────────────────────

func TestSync_InitialSnapshot(t *testing.T) {
	var (
		mu                 sync.Mutex
		gotAuth, gotFilter string
	)

	r := chi.NewRouter()
	r.Get("/_matrix/client/v3/sync", func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		if gotAuth == "" {
			gotAuth = req.Header.Get("Authorization")
			gotFilter = req.URL.Query().Get("filter")
		}
		mu.Unlock()
		if req.URL.Query().Get("since") == "" {
			writeJSON(w, http.StatusOK, initialSyncBody)
			return
		}
		<-req.Context().Done()
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	rec := &eventRecorder{}
	startSynced(t, s, rec)

	mu.Lock()
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.JSONEq(t, `{"room":{"timeline":{"limit":20}}}`, gotFilter)
	mu.Unlock()

	rooms := s.Rooms()
	require.Len(t, rooms, 2)
	assert.Equal(t, "!dm:x.org", rooms[0].RoomID())
	assert.Equal(t, "!r1:x.org", rooms[1].RoomID())

	r1, ok := s.Room("!r1:x.org")
	require.True(t, ok)
	assert.Equal(t, "General", r1.DisplayName())
	assert.True(t, r1.IsEncrypted())
	assert.False(t, r1.IsDirectMessage())
	assert.Equal(t, 3, r1.UnreadNotificationCount())
	assert.Equal(t, int64(200), r1.LastActiveTimestamp())

	tl := r1.LiveTimelineEvents()
	require.Len(t, tl, 2)
	assert.Equal(t, "$1", tl[0].ID)
	assert.False(t, tl[0].DecryptionFailure)
	assert.Equal(t, "$2", tl[1].ID)
	assert.True(t, tl[1].DecryptionFailure)

	dm, ok := s.Room("!dm:x.org")
	require.True(t, ok)
	assert.True(t, dm.IsDirectMessage())
	assert.Equal(t, "Bob", dm.DisplayName())
	assert.Zero(t, dm.LastActiveTimestamp())

	assert.Len(t, rec.byKind(EventRoomAdded), 2)
	assert.Len(t, rec.byKind(EventTimeline), 2)

	typing := rec.byKind(EventTyping)
	require.Len(t, typing, 1)
	assert.Equal(t, TypingMember{RoomID: "!r1:x.org", UserID: "@b:x.org", Typing: true}, typing[0].Typing)

	assert.Empty(t, rec.byKind(EventDecryptionCompleted))
}

func TestSync_SecondBatchIsSyncing(t *testing.T) {
	r := chi.NewRouter()
	syncRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	rec := &eventRecorder{}
	startSynced(t, s, rec)

	require.Eventually(t, func() bool { return rec.hasStatus(models.SyncSyncing) }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, models.SyncPrepared, rec.byKind(EventSync)[0].SyncStatus)
}

func TestSync_ErrorThenRecovery(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	r := chi.NewRouter()
	r.Get("/_matrix/client/v3/sync", func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			writeJSON(w, http.StatusBadGateway, `upstream down`)
			return
		}
		if req.URL.Query().Get("since") == "" {
			writeJSON(w, http.StatusOK, `{"next_batch":"s1"}`)
			return
		}
		<-req.Context().Done()
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	rec := &eventRecorder{}
	startSynced(t, s, rec)

	events := rec.byKind(EventSync)
	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, models.SyncError, events[0].SyncStatus)
	assert.Equal(t, models.SyncPrepared, events[1].SyncStatus)
}

func TestApplyTyping_Diff(t *testing.T) {
	s := newTestSession(t, "http://127.0.0.1:1", "tok")

	changes := s.applyTyping("!r", []string{"@b:x", "@c:x"})
	assert.Equal(t, []TypingMember{
		{RoomID: "!r", UserID: "@b:x", Typing: true},
		{RoomID: "!r", UserID: "@c:x", Typing: true},
	}, changes)

	changes = s.applyTyping("!r", []string{"@c:x"})
	assert.Equal(t, []TypingMember{{RoomID: "!r", UserID: "@b:x", Typing: false}}, changes)

	assert.Empty(t, s.applyTyping("!r", []string{"@c:x"}))
}

func TestApplyJoinedRoom_LimitedKeepsPendingEcho(t *testing.T) {
	s := newTestSession(t, "http://127.0.0.1:1", "tok")
	room, _ := s.ensureRoom("!r")
	room.appendRemote(clientEvent{EventID: "$old", Type: eventTypeMessage, OriginServerTS: 1})
	room.appendLocal(TimelineEvent{ID: "~t1", Type: eventTypeMessage, Status: StatusSending, Timestamp: 2})

	s.applyJoinedRoom("!r", joinedRoom{Timeline: timelineSection{
		Limited: true,
		Events:  []clientEvent{{EventID: "$new", Type: eventTypeMessage, OriginServerTS: 3}},
	}})

	ids := make([]string, 0)
	for _, ev := range room.LiveTimelineEvents() {
		ids = append(ids, ev.ID)
	}
	assert.Equal(t, []string{"~t1", "$new"}, ids)
}

// ── Sending ─────────────────────────────────────────────────────────────────

func TestSendText_LocalEchoConfirmed(t *testing.T) {
	var gotRoom, gotTxn string
	var gotBody map[string]any

	r := chi.NewRouter()
	syncRoutes(r)
	r.Put("/_matrix/client/v3/rooms/{roomID}/send/m.room.message/{txnID}", func(w http.ResponseWriter, req *http.Request) {
		gotRoom = pathParam(t, req, "roomID")
		gotTxn = pathParam(t, req, "txnID")
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
		writeJSON(w, http.StatusOK, `{"event_id":"$sent"}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	rec := &eventRecorder{}
	startSynced(t, s, rec)

	id, err := s.SendText(context.Background(), "!r1:x.org", "hello")
	require.NoError(t, err)
	assert.Equal(t, "$sent", id)
	assert.Equal(t, "!r1:x.org", gotRoom)
	assert.NotEmpty(t, gotTxn)
	assert.Equal(t, map[string]any{"msgtype": "m.text", "body": "hello"}, gotBody)

	room, _ := s.Room("!r1:x.org")
	tl := room.LiveTimelineEvents()
	last := tl[len(tl)-1]
	assert.Equal(t, "$sent", last.ID)
	assert.Equal(t, StatusSending, last.Status)
	assert.Equal(t, "@a:x.org", last.Sender)

	// The remote echo clears the pending status in place.
	room.(*matrixRoom).appendRemote(clientEvent{
		EventID: "$sent", Type: eventTypeMessage, Sender: "@a:x.org", OriginServerTS: 999,
		Unsigned: unsignedData{TransactionID: gotTxn},
	})
	tl = room.LiveTimelineEvents()
	assert.Len(t, tl, 3)
	assert.Empty(t, tl[len(tl)-1].Status)
	assert.Equal(t, int64(999), tl[len(tl)-1].Timestamp)
}

func TestSendEmote_FailureMarksNotSent(t *testing.T) {
	r := chi.NewRouter()
	syncRoutes(r)
	r.Put("/_matrix/client/v3/rooms/{roomID}/send/m.room.message/{txnID}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"errcode":"M_UNKNOWN","error":"boom"}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	rec := &eventRecorder{}
	startSynced(t, s, rec)

	_, err := s.SendEmote(context.Background(), "!r1:x.org", "waves")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)

	room, _ := s.Room("!r1:x.org")
	tl := room.LiveTimelineEvents()
	last := tl[len(tl)-1]
	assert.Equal(t, StatusNotSent, last.Status)
	assert.Equal(t, "m.emote", last.Content["msgtype"])
}

func TestSendTyping_Body(t *testing.T) {
	var got typingRequest
	var gotUser string

	r := chi.NewRouter()
	r.Put("/_matrix/client/v3/rooms/{roomID}/typing/{userID}", func(w http.ResponseWriter, req *http.Request) {
		gotUser = pathParam(t, req, "userID")
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		writeJSON(w, http.StatusOK, `{}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	require.NoError(t, s.SendTyping(context.Background(), "!r1:x.org", true, 3*time.Second))

	assert.Equal(t, "@a:x.org", gotUser)
	assert.Equal(t, typingRequest{Typing: true, Timeout: 3000}, got)
}

func TestSendReadReceipt(t *testing.T) {
	var gotEvent string

	r := chi.NewRouter()
	r.Post("/_matrix/client/v3/rooms/{roomID}/receipt/m.read/{eventID}", func(w http.ResponseWriter, req *http.Request) {
		gotEvent = pathParam(t, req, "eventID")
		writeJSON(w, http.StatusOK, `{}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	require.NoError(t, s.SendReadReceipt(context.Background(), "!r1:x.org", "$abc"))
	assert.Equal(t, "$abc", gotEvent)

	gotEvent = ""
	require.NoError(t, s.SendReadReceipt(context.Background(), "!r1:x.org", "~local"))
	assert.Empty(t, gotEvent)
}

// ── Membership ──────────────────────────────────────────────────────────────

func TestJoinRoom_Alias(t *testing.T) {
	var gotTarget string

	r := chi.NewRouter()
	r.Post("/_matrix/client/v3/join/{target}", func(w http.ResponseWriter, req *http.Request) {
		gotTarget = pathParam(t, req, "target")
		writeJSON(w, http.StatusOK, `{"room_id":"!joined:x.org"}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	id, err := s.JoinRoom(context.Background(), "#room:x.org")

	require.NoError(t, err)
	assert.Equal(t, "!joined:x.org", id)
	assert.Equal(t, "#room:x.org", gotTarget)
}

func TestLeaveRoom_ForgetsRoom(t *testing.T) {
	r := chi.NewRouter()
	syncRoutes(r)
	r.Post("/_matrix/client/v3/rooms/{roomID}/leave", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	startSynced(t, s, &eventRecorder{})

	require.NoError(t, s.LeaveRoom(context.Background(), "!r1:x.org"))

	_, ok := s.Room("!r1:x.org")
	assert.False(t, ok)
	assert.Len(t, s.Rooms(), 1)
}

func TestLeaveRoom_NotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/_matrix/client/v3/rooms/{roomID}/leave", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"errcode":"M_NOT_FOUND","error":"no such room"}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	err := s.LeaveRoom(context.Background(), "!gone:x.org")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRoom_DirectUpdatesAccountData(t *testing.T) {
	var gotReq CreateRoomRequest
	var gotDirect map[string][]string

	r := chi.NewRouter()
	r.Post("/_matrix/client/v3/createRoom", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotReq))
		writeJSON(w, http.StatusOK, `{"room_id":"!new:x.org"}`)
	})
	r.Put("/_matrix/client/v3/user/{userID}/account_data/m.direct", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "@a:x.org", pathParam(t, req, "userID"))
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotDirect))
		writeJSON(w, http.StatusOK, `{}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	id, err := s.CreateRoom(context.Background(), CreateRoomRequest{
		Invite:   []string{"@bob:x.org"},
		IsDirect: true,
		Preset:   PresetTrustedPrivateChat,
	})

	require.NoError(t, err)
	assert.Equal(t, "!new:x.org", id)
	assert.True(t, gotReq.IsDirect)
	assert.Equal(t, PresetTrustedPrivateChat, gotReq.Preset)
	assert.Equal(t, map[string][]string{"@bob:x.org": {"!new:x.org"}}, gotDirect)

	room, created := s.ensureRoom("!new:x.org")
	assert.True(t, created)
	assert.True(t, room.IsDirectMessage())
}

func TestLogoutRemote(t *testing.T) {
	var gotAuth string

	r := chi.NewRouter()
	r.Post("/_matrix/client/v3/logout", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, `{}`)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s := newTestSession(t, srv.URL, "tok")
	require.NoError(t, s.LogoutRemote(context.Background()))
	assert.Equal(t, "Bearer tok", gotAuth)
}

// ── Subscribe ───────────────────────────────────────────────────────────────

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := newTestSession(t, "http://127.0.0.1:1", "tok")

	var calls int
	unsubscribe := s.Subscribe(EventSync, func(Event) { calls++ })

	s.emit(Event{Kind: EventSync, SyncStatus: models.SyncSyncing})
	s.emit(Event{Kind: EventTyping})
	unsubscribe()
	s.emit(Event{Kind: EventSync, SyncStatus: models.SyncSyncing})

	assert.Equal(t, 1, calls)
}
