// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the configuration used for every field no other source
// sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Homeserver: Homeserver{
			BaseURL:          "https://matrix.org",
			RequestTimeout:   30 * time.Second,
			SyncTimeout:      30 * time.Second,
			InitialSyncLimit: 50,
			SyncRetryDelay:   5 * time.Second,
		},
		Engine: Engine{
			DecryptionDebounce: 100 * time.Millisecond,
			RoomWaitTimeout:    5 * time.Second,
			RoomWaitInterval:   100 * time.Millisecond,
			TypingTTL:          3 * time.Second,
			TypingIdle:         2500 * time.Millisecond,
			ReceiptTimeout:     10 * time.Second,
		},
		Log: Log{
			FilePath: "myMatrix.log",
			Level:    "info",
		},
	}
}
