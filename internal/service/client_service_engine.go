// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/Julien-Turcotte/myMatrix/internal/logger"
	"github.com/Julien-Turcotte/myMatrix/models"
)

// EngineOptions tunes the sync engine. Zero values fall back to defaults.
type EngineOptions struct {
	InitialSyncLimit   int
	DecryptionDebounce time.Duration
	RoomWaitTimeout    time.Duration
	RoomWaitInterval   time.Duration
	TypingTTL          time.Duration
	ReceiptTimeout     time.Duration
	DeviceIDPrefix     string
}

const (
	DefaultInitialSyncLimit   = 50
	DefaultDecryptionDebounce = 100 * time.Millisecond
	DefaultRoomWaitTimeout    = 5 * time.Second
	DefaultRoomWaitInterval   = 100 * time.Millisecond
	DefaultTypingTTL          = 3 * time.Second
	DefaultReceiptTimeout     = 10 * time.Second
	DefaultDeviceIDPrefix     = "myMatrix"
)

func (o EngineOptions) withDefaults() EngineOptions {
	if o.InitialSyncLimit <= 0 {
		o.InitialSyncLimit = DefaultInitialSyncLimit
	}
	if o.DecryptionDebounce <= 0 {
		o.DecryptionDebounce = DefaultDecryptionDebounce
	}
	if o.RoomWaitTimeout <= 0 {
		o.RoomWaitTimeout = DefaultRoomWaitTimeout
	}
	if o.RoomWaitInterval <= 0 {
		o.RoomWaitInterval = DefaultRoomWaitInterval
	}
	if o.TypingTTL <= 0 {
		o.TypingTTL = DefaultTypingTTL
	}
	if o.ReceiptTimeout <= 0 {
		o.ReceiptTimeout = DefaultReceiptTimeout
	}
	if o.DeviceIDPrefix == "" {
		o.DeviceIDPrefix = DefaultDeviceIDPrefix
	}
	return o
}

// syncEngine implements ClientSyncEngine.
//
// mu serializes every state transition and the state-touching part of each
// command. Calls into the session that may block run without mu held.
// generation is bumped whenever the session is replaced or released;
// callbacks carry the generation they were created under and return
// silently when it is stale.
type syncEngine struct {
	factory adapter.SessionFactory
	opts    EngineOptions
	logger  *logger.Logger
	now     func() time.Time

	debouncer *decryptionDebouncer
	tracker   *readTracker
	changes   chan struct{}

	mu           sync.RWMutex
	generation   uint64
	session      adapter.Session
	unsubscribe  []func()
	userID       string
	status       models.SyncStatus
	rooms        []models.RoomSummary
	activeRoomID string
	timelines    map[string][]models.MessageRecord
	typing       map[string]map[string]struct{}
	lastErr      error
}

// NewClientSyncEngine creates an engine with no session. Sessions are
// created through factory on Login.
func NewClientSyncEngine(factory adapter.SessionFactory, opts EngineOptions, log *logger.Logger) ClientSyncEngine {
	return newSyncEngine(factory, opts, log)
}

func newSyncEngine(factory adapter.SessionFactory, opts EngineOptions, log *logger.Logger) *syncEngine {
	if log == nil {
		log = logger.Nop()
	}
	opts = opts.withDefaults()

	e := &syncEngine{
		factory:   factory,
		opts:      opts,
		logger:    log,
		now:       time.Now,
		debouncer: newDecryptionDebouncer(opts.DecryptionDebounce),
		changes:   make(chan struct{}, 1),
		status:    models.SyncStopped,
		timelines: make(map[string][]models.MessageRecord),
		typing:    make(map[string]map[string]struct{}),
	}
	e.tracker = newReadTracker(opts.ReceiptTimeout, opts.TypingTTL, e.isCurrent, log)
	return e
}

// Login implements ClientSyncEngine.
func (e *syncEngine) Login(ctx context.Context, creds models.Credentials) error {
	if err := validateCredentials(creds); err != nil {
		return err
	}

	session, err := e.openSession(ctx, creds)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrAuth, err)
		e.recordError(err)
		return err
	}

	// A previous session, if any, is released without invalidating its token.
	e.release(context.Background(), false)

	e.mu.Lock()
	e.lastErr = nil
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	unsubscribe := e.subscribe(session, gen)

	startOpts := adapter.StartOptions{InitialSyncLimit: e.opts.InitialSyncLimit}
	if err = session.Start(context.WithoutCancel(ctx), startOpts); err != nil {
		for _, fn := range unsubscribe {
			fn()
		}
		err = fmt.Errorf("%w: start session: %w", ErrAuth, err)
		e.recordError(err)
		return err
	}

	e.mu.Lock()
	if e.generation != gen {
		// released while starting
		e.mu.Unlock()
		for _, fn := range unsubscribe {
			fn()
		}
		session.Stop()
		return ErrNotConnected
	}
	e.session = session
	e.unsubscribe = unsubscribe
	e.userID = session.UserID()
	if e.userID == "" {
		e.userID = creds.UserID
	}
	e.mu.Unlock()

	e.logger.Info().Str("user_id", e.userID).Msg("session started")
	e.notify()
	return nil
}

// openSession builds an authenticated session. With a password the
// credentials are exchanged on a throwaway unauthenticated session first.
func (e *syncEngine) openSession(ctx context.Context, creds models.Credentials) (adapter.Session, error) {
	if creds.UsesToken() {
		deviceID := creds.DeviceID
		if deviceID == "" {
			deviceID = fmt.Sprintf("%s_%d", e.opts.DeviceIDPrefix, e.now().UnixMilli())
		}
		return e.factory.NewSession(adapter.SessionConfig{
			BaseURL:     creds.BaseURL,
			UserID:      creds.UserID,
			AccessToken: creds.AccessToken,
			DeviceID:    deviceID,
		})
	}

	bootstrap, err := e.factory.NewSession(adapter.SessionConfig{BaseURL: creds.BaseURL, DeviceID: creds.DeviceID})
	if err != nil {
		return nil, err
	}

	resp, err := bootstrap.ExchangeCredentials(ctx, creds.UserID, creds.Password)
	if err != nil {
		return nil, err
	}

	return e.factory.NewSession(adapter.SessionConfig{
		BaseURL:     creds.BaseURL,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		DeviceID:    resp.DeviceID,
	})
}

// Logout implements ClientSyncEngine.
func (e *syncEngine) Logout(ctx context.Context) {
	e.release(ctx, true)
}

// Close implements ClientSyncEngine.
func (e *syncEngine) Close() {
	e.release(context.Background(), false)
	e.tracker.Wait()
}

// release drops the current session, if any, and resets derived state.
// State is reset before the session is torn down so no stale callback can
// observe a half-released engine.
func (e *syncEngine) release(ctx context.Context, remote bool) {
	e.mu.Lock()
	session := e.session
	unsubscribe := e.unsubscribe
	e.session = nil
	e.unsubscribe = nil
	e.generation++
	e.resetLocked()
	e.mu.Unlock()

	e.debouncer.CancelAll()
	e.tracker.Reset()
	e.notify()

	if session == nil {
		return
	}

	for _, fn := range unsubscribe {
		fn()
	}
	if remote {
		if err := session.LogoutRemote(ctx); err != nil {
			e.logger.Warn().Err(err).Msg("remote logout failed")
		}
	}
	session.Stop()

	e.logger.Info().Bool("remote", remote).Msg("session released")
}

func (e *syncEngine) resetLocked() {
	e.userID = ""
	e.status = models.SyncStopped
	e.rooms = nil
	e.activeRoomID = ""
	e.timelines = make(map[string][]models.MessageRecord)
	e.typing = make(map[string]map[string]struct{})
	e.lastErr = nil
}

// Snapshot implements ClientSyncEngine.
func (e *syncEngine) Snapshot() models.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	timelines := make(map[string][]models.MessageRecord, len(e.timelines))
	for roomID, records := range e.timelines {
		timelines[roomID] = slices.Clone(records)
	}

	typing := make(map[string][]string, len(e.typing))
	for roomID, users := range e.typing {
		if len(users) == 0 {
			continue
		}
		typing[roomID] = slices.Sorted(maps.Keys(users))
	}

	return models.Snapshot{
		UserID:       e.userID,
		Connected:    e.session != nil,
		SyncStatus:   e.status,
		Rooms:        slices.Clone(e.rooms),
		ActiveRoomID: e.activeRoomID,
		Timelines:    timelines,
		Typing:       typing,
		LastError:    e.lastErr,
	}
}

// Changes implements ClientSyncEngine.
func (e *syncEngine) Changes() <-chan struct{} {
	return e.changes
}

func (e *syncEngine) notify() {
	select {
	case e.changes <- struct{}{}:
	default:
	}
}

func (e *syncEngine) recordError(err error) {
	e.mu.Lock()
	e.lastErr = err
	e.mu.Unlock()

	e.logger.Error().Err(err).Msg("login failed")
	e.notify()
}

func (e *syncEngine) isCurrent(generation uint64) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.generation == generation
}

// current returns the live session and its generation, or nil.
func (e *syncEngine) current() (adapter.Session, uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session, e.generation
}
