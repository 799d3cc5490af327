// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"
)

// decryptionDebouncer keeps at most one pending timer per room. Scheduling
// a room that already has a pending timer stops it and starts a new one,
// so a burst of events results in a single callback.
type decryptionDebouncer struct {
	delay time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDecryptionDebouncer(delay time.Duration) *decryptionDebouncer {
	return &decryptionDebouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arranges for fn to run after the debounce delay unless roomID
// is scheduled again or cancelled first.
func (d *decryptionDebouncer) Schedule(roomID string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[roomID]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timers[roomID] != t {
			// replaced or cancelled after the timer had already fired
			d.mu.Unlock()
			return
		}
		delete(d.timers, roomID)
		d.mu.Unlock()

		fn()
	})
	d.timers[roomID] = t
}

// Pending reports whether roomID has an outstanding timer.
func (d *decryptionDebouncer) Pending(roomID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.timers[roomID]
	return ok
}

// Cancel drops the pending timer of roomID, if any.
func (d *decryptionDebouncer) Cancel(roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[roomID]; ok {
		t.Stop()
		delete(d.timers, roomID)
	}
}

// CancelAll drops every pending timer.
func (d *decryptionDebouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for roomID, t := range d.timers {
		t.Stop()
		delete(d.timers, roomID)
	}
}
