// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"MATRIX_HOMESERVER":         "https://matrix.example.org",
		"MATRIX_USER_ID":            "@alice:example.org",
		"MATRIX_DEVICE_ID":          "DEVICE",
		"MATRIX_REQUEST_TIMEOUT":    "20s",
		"MATRIX_SYNC_TIMEOUT":       "45s",
		"MATRIX_INITIAL_SYNC_LIMIT": "25",
		"MATRIX_SYNC_RETRY_DELAY":   "2s",

		"ENGINE_DECRYPTION_DEBOUNCE": "150ms",
		"ENGINE_ROOM_WAIT_TIMEOUT":   "8s",
		"ENGINE_ROOM_WAIT_INTERVAL":  "200ms",
		"ENGINE_TYPING_TTL":          "4s",
		"ENGINE_TYPING_IDLE":         "2s",
		"ENGINE_RECEIPT_TIMEOUT":     "5s",

		"LOG_FILE":  "/tmp/mymatrix.log",
		"LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://matrix.example.org", cfg.Homeserver.BaseURL)
	assert.Equal(t, "@alice:example.org", cfg.Homeserver.UserID)
	assert.Equal(t, "DEVICE", cfg.Homeserver.DeviceID)
	assert.Equal(t, 20*time.Second, cfg.Homeserver.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Homeserver.SyncTimeout)
	assert.Equal(t, 25, cfg.Homeserver.InitialSyncLimit)
	assert.Equal(t, 2*time.Second, cfg.Homeserver.SyncRetryDelay)

	assert.Equal(t, 150*time.Millisecond, cfg.Engine.DecryptionDebounce)
	assert.Equal(t, 8*time.Second, cfg.Engine.RoomWaitTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Engine.RoomWaitInterval)
	assert.Equal(t, 4*time.Second, cfg.Engine.TypingTTL)
	assert.Equal(t, 2*time.Second, cfg.Engine.TypingIdle)
	assert.Equal(t, 5*time.Second, cfg.Engine.ReceiptTimeout)

	assert.Equal(t, "/tmp/mymatrix.log", cfg.Log.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ENGINE_TYPING_TTL", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
