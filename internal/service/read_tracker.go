// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/Julien-Turcotte/myMatrix/internal/logger"
)

// readTracker dispatches read receipts and typing notifications without
// blocking the caller. Failures are logged and never returned. Each
// dispatch carries the session generation it was issued under and is
// dropped when that generation is no longer current.
type readTracker struct {
	receiptTimeout time.Duration
	typingTTL      time.Duration
	isCurrent      func(generation uint64) bool
	logger         *logger.Logger

	mu       sync.Mutex
	lastRead map[string]string

	wg sync.WaitGroup
}

func newReadTracker(receiptTimeout, typingTTL time.Duration, isCurrent func(uint64) bool, log *logger.Logger) *readTracker {
	return &readTracker{
		receiptTimeout: receiptTimeout,
		typingTTL:      typingTTL,
		isCurrent:      isCurrent,
		logger:         log,
		lastRead:       make(map[string]string),
	}
}

// MarkRead sends a read receipt for eventID unless it is already the last
// event acknowledged in roomID.
func (t *readTracker) MarkRead(ctx context.Context, generation uint64, session adapter.Session, roomID, eventID string) {
	if eventID == "" {
		return
	}

	t.mu.Lock()
	if t.lastRead[roomID] == eventID {
		t.mu.Unlock()
		return
	}
	t.lastRead[roomID] = eventID
	t.mu.Unlock()

	t.dispatch(ctx, generation, func(ctx context.Context) {
		if err := session.SendReadReceipt(ctx, roomID, eventID); err != nil {
			t.forget(roomID, eventID)
			t.logger.Warn().Err(err).
				Str("room_id", roomID).
				Str("event_id", eventID).
				Msg("failed to send read receipt")
		}
	})
}

// SendTyping publishes the typing state of the current user in roomID.
func (t *readTracker) SendTyping(ctx context.Context, generation uint64, session adapter.Session, roomID string, typing bool) {
	t.dispatch(ctx, generation, func(ctx context.Context) {
		if err := session.SendTyping(ctx, roomID, typing, t.typingTTL); err != nil {
			t.logger.Warn().Err(err).
				Str("room_id", roomID).
				Bool("typing", typing).
				Msg("failed to send typing notification")
		}
	})
}

// Reset forgets every acknowledged event.
func (t *readTracker) Reset() {
	t.mu.Lock()
	clear(t.lastRead)
	t.mu.Unlock()
}

// Wait blocks until all in-flight dispatches have finished.
func (t *readTracker) Wait() {
	t.wg.Wait()
}

func (t *readTracker) dispatch(ctx context.Context, generation uint64, fn func(ctx context.Context)) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if !t.isCurrent(generation) {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.receiptTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func (t *readTracker) forget(roomID, eventID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastRead[roomID] == eventID {
		delete(t.lastRead, roomID)
	}
}
