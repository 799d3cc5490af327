// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] contains only values
// the client can work with. Empty fields are allowed here; the defaults
// source fills them before validation in normal operation.
func (cfg *StructuredConfig) validate() error {
	if cfg.Homeserver.BaseURL != "" {
		raw := cfg.Homeserver.BaseURL
		if !strings.Contains(raw, "://") {
			raw = "https://" + raw
		}
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: homeserver %q", ErrInvalidHomeserverConfigs, cfg.Homeserver.BaseURL)
		}
	}

	if cfg.Homeserver.RequestTimeout < 0 || cfg.Homeserver.SyncTimeout < 0 ||
		cfg.Homeserver.SyncRetryDelay < 0 || cfg.Homeserver.InitialSyncLimit < 0 {
		return fmt.Errorf("%w: negative value", ErrInvalidHomeserverConfigs)
	}

	e := cfg.Engine
	for _, d := range []time.Duration{
		e.DecryptionDebounce, e.RoomWaitTimeout, e.RoomWaitInterval,
		e.TypingTTL, e.TypingIdle, e.ReceiptTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%w: negative duration", ErrInvalidEngineConfigs)
		}
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Homeserver.RequestTimeout == 0 || cfg.Homeserver.SyncTimeout == 0 {
		return ErrInvalidHomeserverConfigs
	}

	if cfg.Engine.RoomWaitTimeout == 0 || cfg.Engine.RoomWaitInterval == 0 ||
		cfg.Engine.RoomWaitInterval > cfg.Engine.RoomWaitTimeout {
		return ErrInvalidEngineConfigs
	}

	if cfg.Log.FilePath == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}
