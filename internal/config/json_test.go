// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"homeserver": {
			"base_url": "https://matrix.example.org",
			"user_id": "@alice:example.org",
			"request_timeout": "20s",
			"sync_timeout": "45s",
			"initial_sync_limit": 30,
			"sync_retry_delay": "3s"
		},
		"engine": {
			"decryption_debounce": "100ms",
			"room_wait_timeout": "5s",
			"room_wait_interval": "100ms",
			"typing_ttl": "3s",
			"typing_idle": "2500ms",
			"receipt_timeout": "10s"
		},
		"log": { "file": "/var/log/mymatrix.log", "level": "debug" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://matrix.example.org", cfg.Homeserver.BaseURL)
	assert.Equal(t, "@alice:example.org", cfg.Homeserver.UserID)
	assert.Equal(t, 20*time.Second, cfg.Homeserver.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Homeserver.SyncTimeout)
	assert.Equal(t, 30, cfg.Homeserver.InitialSyncLimit)
	assert.Equal(t, 3*time.Second, cfg.Homeserver.SyncRetryDelay)

	assert.Equal(t, 100*time.Millisecond, cfg.Engine.DecryptionDebounce)
	assert.Equal(t, 5*time.Second, cfg.Engine.RoomWaitTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Engine.RoomWaitInterval)
	assert.Equal(t, 3*time.Second, cfg.Engine.TypingTTL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Engine.TypingIdle)
	assert.Equal(t, 10*time.Second, cfg.Engine.ReceiptTimeout)

	assert.Equal(t, "/var/log/mymatrix.log", cfg.Log.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"engine": {"typing_ttl": "not-a-duration"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000`), &d))
	assert.Equal(t, time.Millisecond, time.Duration(d))

	out, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.JSONEq(t, `"1.5s"`, string(out))
}
