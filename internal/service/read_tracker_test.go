// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Julien-Turcotte/myMatrix/internal/logger"
	"github.com/Julien-Turcotte/myMatrix/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestTracker(current uint64) *readTracker {
	return newReadTracker(time.Second, 3*time.Second, func(g uint64) bool { return g == current }, logger.Nop())
}

func TestReadTracker_MarkReadDedupes(t *testing.T) {
	session := mock.NewMockSession(gomock.NewController(t))
	tr := newTestTracker(1)

	session.EXPECT().SendReadReceipt(gomock.Any(), "!r", "$1").Return(nil).Times(1)
	session.EXPECT().SendReadReceipt(gomock.Any(), "!r", "$2").Return(nil).Times(1)

	tr.MarkRead(context.Background(), 1, session, "!r", "$1")
	tr.MarkRead(context.Background(), 1, session, "!r", "$1")
	tr.MarkRead(context.Background(), 1, session, "!r", "")
	tr.MarkRead(context.Background(), 1, session, "!r", "$2")
	tr.Wait()
}

func TestReadTracker_FailedReceiptIsRetried(t *testing.T) {
	session := mock.NewMockSession(gomock.NewController(t))
	tr := newTestTracker(1)

	gomock.InOrder(
		session.EXPECT().SendReadReceipt(gomock.Any(), "!r", "$1").Return(errors.New("offline")),
		session.EXPECT().SendReadReceipt(gomock.Any(), "!r", "$1").Return(nil),
	)

	tr.MarkRead(context.Background(), 1, session, "!r", "$1")
	tr.Wait()
	tr.MarkRead(context.Background(), 1, session, "!r", "$1")
	tr.Wait()
}

func TestReadTracker_StaleGenerationDropped(t *testing.T) {
	session := mock.NewMockSession(gomock.NewController(t))
	tr := newTestTracker(2)

	tr.MarkRead(context.Background(), 1, session, "!r", "$1")
	tr.SendTyping(context.Background(), 1, session, "!r", true)
	tr.Wait()
}

func TestReadTracker_SendTypingUsesTTL(t *testing.T) {
	session := mock.NewMockSession(gomock.NewController(t))
	tr := newTestTracker(1)

	session.EXPECT().SendTyping(gomock.Any(), "!r", true, 3*time.Second).Return(errors.New("ignored"))
	tr.SendTyping(context.Background(), 1, session, "!r", true)
	tr.Wait()
}

func TestReadTracker_ResetForgetsReceipts(t *testing.T) {
	session := mock.NewMockSession(gomock.NewController(t))
	tr := newTestTracker(1)

	session.EXPECT().SendReadReceipt(gomock.Any(), "!r", "$1").Return(nil).Times(2)

	tr.MarkRead(context.Background(), 1, session, "!r", "$1")
	tr.Wait()
	tr.Reset()
	tr.MarkRead(context.Background(), 1, session, "!r", "$1")
	tr.Wait()

	assert.Len(t, tr.lastRead, 1)
}
