// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return "Invalid credentials or access denied"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, please log in again"
	case errors.Is(err, adapter.ErrRateLimited):
		return "Too many requests, try again later"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or homeserver unreachable"
	}

	return err.Error()
}
