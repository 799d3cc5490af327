// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrNotAuthenticated = errors.New("session has no access token")
	ErrAlreadyStarted   = errors.New("sync already started")
	ErrUnknownRoom      = errors.New("unknown room")
	ErrEmptyBaseURL     = errors.New("empty homeserver address")
)

// MatrixError is the standard error body returned by a homeserver:
// {"errcode": "M_FORBIDDEN", "error": "..."}. StatusCode is filled in from
// the HTTP response.
type MatrixError struct {
	Code       string `json:"errcode"`
	Message    string `json:"error"`
	StatusCode int    `json:"-"`

	// RetryAfterMS is set by M_LIMIT_EXCEEDED responses.
	RetryAfterMS int64 `json:"retry_after_ms,omitempty"`

	sentinel error
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("matrix error %s (http %d): %s", e.Code, e.StatusCode, e.Message)
}

// Unwrap returns the status sentinel matching StatusCode, so both
// errors.As(err, *MatrixError) and errors.Is(err, ErrForbidden) work.
func (e *MatrixError) Unwrap() error {
	return e.sentinel
}

// Well-known Matrix error codes.
const (
	ErrCodeForbidden     = "M_FORBIDDEN"
	ErrCodeUnknownToken  = "M_UNKNOWN_TOKEN"
	ErrCodeNotFound      = "M_NOT_FOUND"
	ErrCodeLimitExceeded = "M_LIMIT_EXCEEDED"
	ErrCodeUnrecognized  = "M_UNRECOGNIZED"
)

// IsMatrixError reports whether err carries a MatrixError with the given
// errcode.
func IsMatrixError(err error, code string) bool {
	var me *MatrixError
	if errors.As(err, &me) {
		return me.Code == code
	}
	return false
}
