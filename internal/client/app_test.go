// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/Julien-Turcotte/myMatrix/internal/mock"
	"github.com/Julien-Turcotte/myMatrix/internal/service"
	"github.com/Julien-Turcotte/myMatrix/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, nil)
	assert.Error(t, err)

	engine := mock.NewMockClientSyncEngine(gomock.NewController(t))
	_, err = NewApp(&service.ClientServices{Engine: engine}, nil, nil)
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		cancel  bool
		wantErr error
	}{
		{name: "clean exit"},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "interrupted", uiErr: context.Canceled, cancel: true},
		{name: "ui failure", uiErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := mock.NewMockClientSyncEngine(gomock.NewController(t))
			engine.EXPECT().Close().Times(1)

			ui := &fakeUI{err: tt.uiErr}
			app, err := NewApp(&service.ClientServices{Engine: engine}, ui, nil)
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			if tt.cancel {
				cancel()
			}
			defer cancel()

			err = app.run(ctx)
			assert.Equal(t, 1, ui.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
