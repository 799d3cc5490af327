// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ParseFlags parses the client command line. args excludes the program
// name.
//
// Flags:
//
//	-s/--homeserver homeserver URL
//	-u/--user default user ID
//	--device-id device ID to reuse with a token login
//	--request-timeout request timeout (e.g., "30s")
//	--sync-timeout long-poll timeout (e.g., "30s")
//	--initial-sync-limit timeline events per room
//	--sync-retry-delay pause after a failed sync
//	--decryption-debounce re-projection delay after decryption
//	--room-wait-timeout how long to wait for a created room
//	--room-wait-interval room polling interval
//	--typing-ttl typing notification lifetime
//	--typing-idle input idle time before typing stops
//	--receipt-timeout read receipt request timeout
//	--log-file log file path
//	--log-level log level
//	-c/--config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := pflag.NewFlagSet("myMatrix", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Homeserver.BaseURL, "homeserver", "s", "", "Homeserver URL")
	fs.StringVarP(&cfg.Homeserver.UserID, "user", "u", "", "User ID, e.g. @alice:matrix.org")
	fs.StringVar(&cfg.Homeserver.DeviceID, "device-id", "", "Device ID to reuse")
	fs.DurationVar(&cfg.Homeserver.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&cfg.Homeserver.SyncTimeout, "sync-timeout", 0, "Sync long-poll timeout (e.g., 30s)")
	fs.IntVar(&cfg.Homeserver.InitialSyncLimit, "initial-sync-limit", 0, "Timeline events per room")
	fs.DurationVar(&cfg.Homeserver.SyncRetryDelay, "sync-retry-delay", 0, "Delay after a failed sync")
	fs.DurationVar(&cfg.Engine.DecryptionDebounce, "decryption-debounce", 0, "Re-projection delay after decryption")
	fs.DurationVar(&cfg.Engine.RoomWaitTimeout, "room-wait-timeout", 0, "Wait for a created room")
	fs.DurationVar(&cfg.Engine.RoomWaitInterval, "room-wait-interval", 0, "Created room polling interval")
	fs.DurationVar(&cfg.Engine.TypingTTL, "typing-ttl", 0, "Typing notification lifetime")
	fs.DurationVar(&cfg.Engine.TypingIdle, "typing-idle", 0, "Input idle time before typing stops")
	fs.DurationVar(&cfg.Engine.ReceiptTimeout, "receipt-timeout", 0, "Read receipt request timeout")
	fs.StringVar(&cfg.Log.FilePath, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
