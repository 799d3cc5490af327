// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{name: "host without scheme", mutate: func(cfg *StructuredConfig) { cfg.Homeserver.BaseURL = "127.0.0.1:8008" }},
		{
			name:    "scheme without host",
			mutate:  func(cfg *StructuredConfig) { cfg.Homeserver.BaseURL = "https://" },
			wantErr: ErrInvalidHomeserverConfigs,
		},
		{
			name:    "negative sync limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Homeserver.InitialSyncLimit = -1 },
			wantErr: ErrInvalidHomeserverConfigs,
		},
		{
			name:    "negative engine duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Engine.TypingIdle = -time.Second },
			wantErr: ErrInvalidEngineConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "chatty" },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		d := Defaults()
		return &ClientConfig{Homeserver: d.Homeserver, Engine: d.Engine, Log: d.Log}
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Homeserver.SyncTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidHomeserverConfigs)

	cfg = valid()
	cfg.Engine.RoomWaitInterval = 10 * time.Second
	assert.ErrorIs(t, cfg.validate(), ErrInvalidEngineConfigs)

	cfg = valid()
	cfg.Log.FilePath = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidLogConfigs)
}
