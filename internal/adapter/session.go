// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Julien-Turcotte/myMatrix/internal/logger"
	"github.com/Julien-Turcotte/myMatrix/internal/utils"
	"github.com/go-resty/resty/v2"
)

const clientAPIPrefix = "/_matrix/client/v3"

// MatrixConfig tunes sessions built by the Matrix session factory.
type MatrixConfig struct {
	// RequestTimeout bounds every non-sync request.
	RequestTimeout time.Duration
	// SyncTimeout is the long-poll timeout passed to /sync.
	SyncTimeout time.Duration
	// SyncRetryDelay is the pause after a failed sync.
	SyncRetryDelay time.Duration
	// DeviceDisplayName is sent with password logins.
	DeviceDisplayName string
}

func (c MatrixConfig) withDefaults() MatrixConfig {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.SyncTimeout <= 0 {
		c.SyncTimeout = 30 * time.Second
	}
	if c.SyncRetryDelay <= 0 {
		c.SyncRetryDelay = 5 * time.Second
	}
	return c
}

type matrixSessionFactory struct {
	cfg    MatrixConfig
	logger *logger.Logger
}

// NewMatrixSessionFactory returns a [SessionFactory] whose sessions talk to
// a homeserver over the Matrix client-server API.
func NewMatrixSessionFactory(cfg MatrixConfig, log *logger.Logger) SessionFactory {
	if log == nil {
		log = logger.Nop()
	}
	return &matrixSessionFactory{cfg: cfg.withDefaults(), logger: log}
}

// NewSession implements [SessionFactory]. It validates and normalises the
// base URL; no request is made.
func (f *matrixSessionFactory) NewSession(cfg SessionConfig) (Session, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid homeserver address: %w", err)
	}

	log := f.logger.GetChildLogger()
	log.Logger = log.With().Str("user_id", cfg.UserID).Logger()

	return &matrixSession{
		client:        utils.NewHTTPClient(baseURL),
		cfg:           f.cfg,
		logger:        log,
		txn:           utils.NewTxnIDGenerator("mym"),
		userID:        cfg.UserID,
		deviceID:      cfg.DeviceID,
		token:         strings.TrimSpace(cfg.AccessToken),
		rooms:         make(map[string]*matrixRoom),
		typing:        make(map[string]map[string]struct{}),
		directContent: make(map[string][]string),
		subs:          make(map[EventKind]map[int]EventHandler),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type matrixSession struct {
	client *utils.HTTPClient
	cfg    MatrixConfig
	logger *logger.Logger
	txn    *utils.TxnIDGenerator

	userID   string
	deviceID string
	token    string

	roomsMu       sync.RWMutex
	rooms         map[string]*matrixRoom
	roomOrder     []string
	typing        map[string]map[string]struct{}
	directContent map[string][]string

	subsMu  sync.Mutex
	subs    map[EventKind]map[int]EventHandler
	nextSub int

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Session = (*matrixSession)(nil)

func (s *matrixSession) UserID() string { return s.userID }

// ExchangeCredentials implements [Session]. It POSTs an m.login.password
// request with a user identifier to /login.
func (s *matrixSession) ExchangeCredentials(ctx context.Context, userID, password string) (LoginResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out LoginResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{
			Type:                     loginTypePassword,
			Identifier:               userIdentifier{Type: identifierUser, User: userID},
			Password:                 password,
			DeviceID:                 s.deviceID,
			InitialDeviceDisplayName: s.cfg.DeviceDisplayName,
		}).
		SetResult(&out).
		Post(clientAPIPrefix + "/login")
	if err != nil {
		return LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return LoginResponse{}, err
	}
	if out.AccessToken == "" {
		return LoginResponse{}, fmt.Errorf("login response: %w", ErrNotAuthenticated)
	}
	if out.UserID == "" {
		out.UserID = userID
	}

	return out, nil
}

// Start implements [Session]. The sync goroutine runs until Stop is
// called or ctx is cancelled.
func (s *matrixSession) Start(ctx context.Context, opts StartOptions) error {
	if s.token == "" {
		return ErrNotAuthenticated
	}

	s.jobMu.Lock()
	defer s.jobMu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyStarted
	}

	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		s.syncLoop(jobCtx, opts)
	}()

	return nil
}

// Stop implements [Session]. It cancels the sync goroutine's context and
// blocks until the goroutine has fully exited.
func (s *matrixSession) Stop() {
	s.jobMu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// LogoutRemote implements [Session]. It invalidates the access token with
// POST /logout.
func (s *matrixSession) LogoutRemote(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.authedRequest(ctx).
		SetBody(struct{}{}).
		Post(clientAPIPrefix + "/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (s *matrixSession) Rooms() []Room {
	s.roomsMu.RLock()
	defer s.roomsMu.RUnlock()

	out := make([]Room, 0, len(s.roomOrder))
	for _, id := range s.roomOrder {
		out = append(out, s.rooms[id])
	}
	return out
}

func (s *matrixSession) Room(roomID string) (Room, bool) {
	r, ok := s.lookupRoom(roomID)
	if !ok {
		return nil, false
	}
	return r, true
}

func (s *matrixSession) SendText(ctx context.Context, roomID, text string) (string, error) {
	return s.sendMessage(ctx, roomID, msgTypeText, text)
}

func (s *matrixSession) SendEmote(ctx context.Context, roomID, text string) (string, error) {
	return s.sendMessage(ctx, roomID, msgTypeEmote, text)
}

// sendMessage PUTs an m.room.message event. When the room is known
// locally a pending echo is appended first and then either confirmed with
// the server event ID or marked not_sent.
func (s *matrixSession) sendMessage(ctx context.Context, roomID, msgType, body string) (string, error) {
	txnID := s.txn.Generate()
	echoID := localEchoID(txnID)
	content := map[string]any{"msgtype": msgType, "body": body}

	room, known := s.lookupRoom(roomID)
	if known {
		echo := TimelineEvent{
			ID:        echoID,
			RoomID:    roomID,
			Type:      eventTypeMessage,
			Sender:    s.userID,
			Content:   content,
			Timestamp: time.Now().UnixMilli(),
			Status:    StatusSending,
		}
		room.appendLocal(echo)
		s.emit(Event{Kind: EventTimeline, Timeline: &echo, Room: room})
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out eventIDResponse
	resp, err := s.authedRequest(ctx).
		SetPathParams(map[string]string{"roomId": roomID, "txnId": txnID}).
		SetBody(content).
		SetResult(&out).
		Put(clientAPIPrefix + "/rooms/{roomId}/send/m.room.message/{txnId}")
	if err == nil {
		err = mapHTTPError(resp)
	}
	if err != nil {
		if known {
			if te, ok := room.updateLocal(echoID, func(ev *TimelineEvent) { ev.Status = StatusNotSent }); ok {
				s.emit(Event{Kind: EventTimeline, Timeline: &te, Room: room})
			}
		}
		return "", fmt.Errorf("send message request: %w", err)
	}

	if known && out.EventID != "" {
		room.updateLocal(echoID, func(ev *TimelineEvent) { ev.ID = out.EventID })
	}
	return out.EventID, nil
}

func (s *matrixSession) SendTyping(ctx context.Context, roomID string, typing bool, ttl time.Duration) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	body := typingRequest{Typing: typing}
	if typing {
		body.Timeout = ttl.Milliseconds()
	}

	resp, err := s.authedRequest(ctx).
		SetPathParams(map[string]string{"roomId": roomID, "userId": s.userID}).
		SetBody(body).
		Put(clientAPIPrefix + "/rooms/{roomId}/typing/{userId}")
	if err != nil {
		return fmt.Errorf("typing request: %w", err)
	}

	return mapHTTPError(resp)
}

// SendReadReceipt implements [Session]. Local echo IDs have no server
// counterpart yet and are skipped.
func (s *matrixSession) SendReadReceipt(ctx context.Context, roomID, eventID string) error {
	if strings.HasPrefix(eventID, "~") {
		return nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.authedRequest(ctx).
		SetPathParams(map[string]string{"roomId": roomID, "eventId": eventID}).
		SetBody(struct{}{}).
		Post(clientAPIPrefix + "/rooms/{roomId}/receipt/m.read/{eventId}")
	if err != nil {
		return fmt.Errorf("receipt request: %w", err)
	}

	return mapHTTPError(resp)
}

func (s *matrixSession) JoinRoom(ctx context.Context, roomIDOrAlias string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out roomIDResponse
	resp, err := s.authedRequest(ctx).
		SetPathParam("target", roomIDOrAlias).
		SetBody(struct{}{}).
		SetResult(&out).
		Post(clientAPIPrefix + "/join/{target}")
	if err != nil {
		return "", fmt.Errorf("join request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.RoomID, nil
}

// LeaveRoom implements [Session]. On success the room is dropped from the
// local store without waiting for the next sync.
func (s *matrixSession) LeaveRoom(ctx context.Context, roomID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.authedRequest(ctx).
		SetPathParam("roomId", roomID).
		SetBody(struct{}{}).
		Post(clientAPIPrefix + "/rooms/{roomId}/leave")
	if err != nil {
		return fmt.Errorf("leave request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	s.forgetRoom(roomID)
	return nil
}

// CreateRoom implements [Session]. Direct rooms are also recorded in the
// user's m.direct account data; failing to do so is only logged.
func (s *matrixSession) CreateRoom(ctx context.Context, req CreateRoomRequest) (string, error) {
	reqCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out roomIDResponse
	resp, err := s.authedRequest(reqCtx).
		SetBody(req).
		SetResult(&out).
		Post(clientAPIPrefix + "/createRoom")
	if err != nil {
		return "", fmt.Errorf("create room request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if req.IsDirect && len(req.Invite) > 0 {
		if err = s.markDirect(ctx, req.Invite[0], out.RoomID); err != nil {
			s.logger.Warn().Err(err).Str("room_id", out.RoomID).Msg("failed to update m.direct")
		}
	}

	return out.RoomID, nil
}

// markDirect adds roomID to the m.direct entry of peer and uploads the
// merged account data.
func (s *matrixSession) markDirect(ctx context.Context, peer, roomID string) error {
	s.roomsMu.Lock()
	if !slices.Contains(s.directContent[peer], roomID) {
		s.directContent[peer] = append(s.directContent[peer], roomID)
	}
	content := make(map[string][]string, len(s.directContent))
	for k, v := range s.directContent {
		content[k] = slices.Clone(v)
	}
	room := s.rooms[roomID]
	s.roomsMu.Unlock()

	if room != nil {
		room.setDirect(true)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.authedRequest(ctx).
		SetPathParam("userId", s.userID).
		SetBody(content).
		Put(clientAPIPrefix + "/user/{userId}/account_data/" + eventTypeDirect)
	if err != nil {
		return fmt.Errorf("account data request: %w", err)
	}

	return mapHTTPError(resp)
}

func (s *matrixSession) authedRequest(ctx context.Context) *resty.Request {
	req := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if s.token != "" {
		req.SetHeader("Authorization", "Bearer "+s.token)
	}
	return req
}

func (s *matrixSession) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.RequestTimeout)
}

func (s *matrixSession) lookupRoom(roomID string) (*matrixRoom, bool) {
	s.roomsMu.RLock()
	defer s.roomsMu.RUnlock()

	r, ok := s.rooms[roomID]
	return r, ok
}

// ensureRoom returns the room with the given ID, creating it on first
// sight. created reports whether the room is new.
func (s *matrixSession) ensureRoom(roomID string) (room *matrixRoom, created bool) {
	s.roomsMu.Lock()
	defer s.roomsMu.Unlock()

	if r, ok := s.rooms[roomID]; ok {
		return r, false
	}

	r := newMatrixRoom(roomID, s.userID)
	r.direct = s.isDirectLocked(roomID)
	s.rooms[roomID] = r
	s.roomOrder = append(s.roomOrder, roomID)
	return r, true
}

func (s *matrixSession) forgetRoom(roomID string) {
	s.roomsMu.Lock()
	defer s.roomsMu.Unlock()

	if _, ok := s.rooms[roomID]; !ok {
		return
	}
	delete(s.rooms, roomID)
	delete(s.typing, roomID)
	s.roomOrder = slices.DeleteFunc(s.roomOrder, func(id string) bool { return id == roomID })
}

func (s *matrixSession) isDirectLocked(roomID string) bool {
	for _, ids := range s.directContent {
		if slices.Contains(ids, roomID) {
			return true
		}
	}
	return false
}
