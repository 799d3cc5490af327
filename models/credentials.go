// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Credentials is the login configuration entered by the user. Exactly one
// of Password or AccessToken must be set.
type Credentials struct {
	// BaseURL is the homeserver URL (e.g. "https://matrix.org").
	BaseURL string `json:"base_url"`

	// UserID is the fully-qualified user ID (e.g. "@alice:matrix.org").
	UserID string `json:"user_id"`

	// Password triggers the two-step credential exchange.
	Password string `json:"-"`

	// AccessToken logs in directly with an existing token.
	AccessToken string `json:"-"`

	// DeviceID is optional. Token logins without one get a generated ID.
	DeviceID string `json:"device_id,omitempty"`
}

// UsesToken reports whether the credentials log in with an access token.
func (c Credentials) UsesToken() bool {
	return strings.TrimSpace(c.AccessToken) != ""
}
