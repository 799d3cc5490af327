// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// Wire types for the subset of the Matrix client-server API the session
// speaks. Unknown fields are ignored.

const (
	loginTypePassword = "m.login.password"
	identifierUser    = "m.id.user"

	eventTypeName           = "m.room.name"
	eventTypeCanonicalAlias = "m.room.canonical_alias"
	eventTypeEncryption     = "m.room.encryption"
	eventTypeMember         = "m.room.member"
	eventTypeMessage        = "m.room.message"
	eventTypeEncrypted      = "m.room.encrypted"
	eventTypeTyping         = "m.typing"
	eventTypeDirect         = "m.direct"

	msgTypeText  = "m.text"
	msgTypeEmote = "m.emote"

	membershipJoin   = "join"
	membershipInvite = "invite"
)

type userIdentifier struct {
	Type string `json:"type"`
	User string `json:"user"`
}

type loginRequest struct {
	Type                     string         `json:"type"`
	Identifier               userIdentifier `json:"identifier"`
	Password                 string         `json:"password"`
	DeviceID                 string         `json:"device_id,omitempty"`
	InitialDeviceDisplayName string         `json:"initial_device_display_name,omitempty"`
}

type eventIDResponse struct {
	EventID string `json:"event_id"`
}

type roomIDResponse struct {
	RoomID string `json:"room_id"`
}

type typingRequest struct {
	Typing  bool  `json:"typing"`
	Timeout int64 `json:"timeout,omitempty"`
}

type unsignedData struct {
	TransactionID string `json:"transaction_id,omitempty"`
}

type clientEvent struct {
	EventID        string         `json:"event_id"`
	Type           string         `json:"type"`
	Sender         string         `json:"sender"`
	StateKey       *string        `json:"state_key,omitempty"`
	Content        map[string]any `json:"content"`
	OriginServerTS int64          `json:"origin_server_ts"`
	Unsigned       unsignedData   `json:"unsigned"`
}

type eventList struct {
	Events []clientEvent `json:"events"`
}

type timelineSection struct {
	Events    []clientEvent `json:"events"`
	Limited   bool          `json:"limited"`
	PrevBatch string        `json:"prev_batch"`
}

type unreadNotifications struct {
	NotificationCount int `json:"notification_count"`
	HighlightCount    int `json:"highlight_count"`
}

type joinedRoom struct {
	State               eventList           `json:"state"`
	Timeline            timelineSection     `json:"timeline"`
	Ephemeral           eventList           `json:"ephemeral"`
	AccountData         eventList           `json:"account_data"`
	UnreadNotifications unreadNotifications `json:"unread_notifications"`
}

type leftRoom struct {
	Timeline timelineSection `json:"timeline"`
}

type roomsSection struct {
	Join  map[string]joinedRoom `json:"join"`
	Leave map[string]leftRoom   `json:"leave"`
}

type syncResponse struct {
	NextBatch   string       `json:"next_batch"`
	Rooms       roomsSection `json:"rooms"`
	AccountData eventList    `json:"account_data"`
}

func contentString(content map[string]any, key string) string {
	if v, ok := content[key].(string); ok {
		return v
	}
	return ""
}
