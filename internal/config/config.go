// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// myMatrix client. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Homeserver holds the connection settings for the Matrix homeserver.
	Homeserver Homeserver `envPrefix:"MATRIX_"`

	// Engine holds the timing knobs of the sync engine.
	Engine Engine `envPrefix:"ENGINE_"`

	// Log holds the log file location and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Homeserver holds the settings used to reach the homeserver. BaseURL and
// UserID only prefill the login screen and may be left empty.
type Homeserver struct {
	// BaseURL is the homeserver URL (e.g. "https://matrix.org").
	// Env: MATRIX_HOMESERVER
	BaseURL string `env:"HOMESERVER"`

	// UserID is the default user ID offered on the login screen.
	// Env: MATRIX_USER_ID
	UserID string `env:"USER_ID"`

	// DeviceID reuses an existing device when logging in with a token.
	// Env: MATRIX_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// RequestTimeout bounds every non-sync request.
	// Env: MATRIX_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SyncTimeout is the long-poll timeout passed to /sync.
	// Env: MATRIX_SYNC_TIMEOUT
	SyncTimeout time.Duration `env:"SYNC_TIMEOUT"`

	// InitialSyncLimit caps timeline events per room on every sync.
	// Env: MATRIX_INITIAL_SYNC_LIMIT
	InitialSyncLimit int `env:"INITIAL_SYNC_LIMIT"`

	// SyncRetryDelay is the pause after a failed sync request.
	// Env: MATRIX_SYNC_RETRY_DELAY
	SyncRetryDelay time.Duration `env:"SYNC_RETRY_DELAY"`
}

// Engine holds the timing settings of the sync engine and the chat UI.
type Engine struct {
	// Env: ENGINE_DECRYPTION_DEBOUNCE
	DecryptionDebounce time.Duration `env:"DECRYPTION_DEBOUNCE"`
	// Env: ENGINE_ROOM_WAIT_TIMEOUT
	RoomWaitTimeout time.Duration `env:"ROOM_WAIT_TIMEOUT"`
	// Env: ENGINE_ROOM_WAIT_INTERVAL
	RoomWaitInterval time.Duration `env:"ROOM_WAIT_INTERVAL"`
	// Env: ENGINE_TYPING_TTL
	TypingTTL time.Duration `env:"TYPING_TTL"`
	// TypingIdle is how long the input may stay untouched before the UI
	// reports that the user stopped typing.
	// Env: ENGINE_TYPING_IDLE
	TypingIdle time.Duration `env:"TYPING_IDLE"`
	// Env: ENGINE_RECEIPT_TIMEOUT
	ReceiptTimeout time.Duration `env:"RECEIPT_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// FilePath is the log file. The terminal belongs to the UI, so logs
	// never go to stdout.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args excludes the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
