// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// SplitUserID splits "@local:server" into its localpart and server name.
// ok is false when id is not a well-formed user ID.
func SplitUserID(id string) (local, server string, ok bool) {
	if !strings.HasPrefix(id, "@") {
		return "", "", false
	}
	local, server, found := strings.Cut(id[1:], ":")
	if !found || local == "" || server == "" || strings.ContainsAny(local, " \t\n") {
		return "", "", false
	}
	return local, server, true
}

// IsUserID reports whether id has the "@local:server" shape.
func IsUserID(id string) bool {
	_, _, ok := SplitUserID(id)
	return ok
}

// Localpart returns the part of a room or user ID between its sigil and
// the first colon, or id unchanged when it has no such shape.
func Localpart(id string) string {
	if len(id) < 2 {
		return id
	}
	switch id[0] {
	case '@', '!', '#':
		local, _, found := strings.Cut(id[1:], ":")
		if found {
			return local
		}
	}
	return id
}
