// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/sethvargo/go-retry"
)

var errRoomPending = errors.New("room not materialized yet")

// waitForRoom polls session.Room at a constant interval until roomID is
// known locally, ctx is done, or timeout elapses. Expiry yields ErrTimeout.
func waitForRoom(ctx context.Context, session adapter.Session, roomID string, timeout, interval time.Duration) (adapter.Room, error) {
	var room adapter.Room

	backoff := retry.WithMaxDuration(timeout, retry.NewConstant(interval))
	err := retry.Do(ctx, backoff, func(_ context.Context) error {
		r, ok := session.Room(roomID)
		if !ok {
			return retry.RetryableError(errRoomPending)
		}
		room = r
		return nil
	})

	switch {
	case err == nil:
		return room, nil
	case errors.Is(err, errRoomPending):
		return nil, fmt.Errorf("%w: waiting for room %s after %s", ErrTimeout, roomID, timeout)
	default:
		return nil, fmt.Errorf("wait for room %s: %w", roomID, err)
	}
}
