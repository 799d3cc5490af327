// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateRoomOptions describes a room the user asked to create: either a
// named room (Name) or a direct conversation (IsDirect + InviteUserID).
type CreateRoomOptions struct {
	Name         string `json:"name,omitempty"`
	IsDirect     bool   `json:"is_direct,omitempty"`
	InviteUserID string `json:"invite_user_id,omitempty"`
}
