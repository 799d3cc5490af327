// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientConfig is the validated view of [StructuredConfig] consumed by the
// client runtime.
type ClientConfig struct {
	// Homeserver contains connection defaults and transport timeouts.
	Homeserver Homeserver
	// Engine contains sync engine and UI timings.
	Engine Engine
	// Log contains logger settings.
	Log Log
}

// GetClientConfig builds and validates a client config from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], drops the fields that
// only matter while loading, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Homeserver: cfg.Homeserver,
		Engine:     cfg.Engine,
		Log:        cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
