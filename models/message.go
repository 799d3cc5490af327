// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageType is the renderable category of a projected timeline entry.
type MessageType string

const (
	// MessageText is an m.room.message event (text, emote, image, ...).
	MessageText MessageType = "text"

	// MessageMembership is an m.room.member event.
	MessageMembership MessageType = "membership"

	// MessageEncrypted is an m.room.encrypted event still awaiting (or
	// having failed) decryption.
	MessageEncrypted MessageType = "encrypted"
)

// Protocol event types the timeline projection keeps. Every other type is
// dropped from the projection.
const (
	EventTypeMessage   = "m.room.message"
	EventTypeMember    = "m.room.member"
	EventTypeEncrypted = "m.room.encrypted"
)

// MessageTypeOf maps a protocol event type to its MessageType. The second
// result is false for event types that are not rendered.
func MessageTypeOf(eventType string) (MessageType, bool) {
	switch eventType {
	case EventTypeMessage:
		return MessageText, true
	case EventTypeMember:
		return MessageMembership, true
	case EventTypeEncrypted:
		return MessageEncrypted, true
	default:
		return "", false
	}
}

// MessageRecord is one render-ready entry of a room timeline.
//
// A room's records are always produced by a full re-projection of its live
// timeline and replaced as a whole; a slice handed out by the engine is
// never modified afterwards.
type MessageRecord struct {
	// ID is the event ID, unique within the room. Local echoes use a
	// temporary "~txn" identifier until the server confirms them.
	ID string `json:"id"`

	// Type is the renderable category.
	Type MessageType `json:"type"`

	// EventType is the raw protocol event type (e.g. "m.room.message").
	EventType string `json:"event_type"`

	// Sender is the fully-qualified user ID of the author.
	Sender string `json:"sender"`

	// Content is the opaque event content.
	Content map[string]any `json:"content,omitempty"`

	// Timestamp is the origin server timestamp in milliseconds.
	Timestamp int64 `json:"timestamp"`

	// IsLocal is true while the event is a pending local echo.
	IsLocal bool `json:"is_local"`

	// IsDecryptionFailure is true when the event could not be decrypted.
	IsDecryptionFailure bool `json:"is_decryption_failure"`
}

// ContentString returns Content[key] when it is a string, or "".
func (m MessageRecord) ContentString(key string) string {
	if m.Content == nil {
		return ""
	}
	v, _ := m.Content[key].(string)
	return v
}
