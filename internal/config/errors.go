// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidHomeserverConfigs indicates an unparsable homeserver URL or
	// missing transport timeouts.
	ErrInvalidHomeserverConfigs = errors.New("invalid homeserver configuration")
	// ErrInvalidEngineConfigs indicates negative or inconsistent engine
	// timings.
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidLogConfigs indicates an unknown log level or missing log file.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
