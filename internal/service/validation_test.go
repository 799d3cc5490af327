// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateRoomRequest(t *testing.T) {
	tests := []struct {
		name    string
		opts    models.CreateRoomOptions
		want    adapter.CreateRoomRequest
		wantErr error
	}{
		{
			name: "named room",
			opts: models.CreateRoomOptions{Name: "  Team  "},
			want: adapter.CreateRoomRequest{Name: "Team"},
		},
		{
			name: "direct room",
			opts: models.CreateRoomOptions{IsDirect: true, InviteUserID: " @bob:x.org "},
			want: adapter.CreateRoomRequest{Invite: []string{"@bob:x.org"}, IsDirect: true, Preset: adapter.PresetTrustedPrivateChat},
		},
		{name: "empty", opts: models.CreateRoomOptions{}, wantErr: ErrValidationRoomOptions},
		{name: "blank name", opts: models.CreateRoomOptions{Name: "   "}, wantErr: ErrValidationRoomOptions},
		{name: "direct without target", opts: models.CreateRoomOptions{IsDirect: true}, wantErr: ErrValidationRoomOptions},
		{name: "malformed target", opts: models.CreateRoomOptions{IsDirect: true, InviteUserID: "bob@x.org"}, wantErr: ErrValidationInvalidUserID},
		{name: "both", opts: models.CreateRoomOptions{Name: "x", IsDirect: true, InviteUserID: "@b:x.org"}, wantErr: ErrValidationAmbiguousRoomKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildCreateRoomRequest(tt.opts)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, validateCredentials(models.Credentials{BaseURL: "x", UserID: "@a:x", Password: "p"}))
	assert.NoError(t, validateCredentials(models.Credentials{BaseURL: "x", UserID: "@a:x", AccessToken: "t"}))
	assert.ErrorIs(t, validateCredentials(models.Credentials{BaseURL: "x", UserID: "@a:x", AccessToken: "  "}), ErrValidationCredentials)
}
