// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrAuth         = errors.New("authentication failed")
	ErrValidation   = errors.New("validation failed")
	ErrTransport    = errors.New("transport failure")
	ErrTimeout      = errors.New("timed out")
	ErrNotConnected = errors.New("not connected")

	ErrValidationNoBaseURL         = errors.New("homeserver URL is required")
	ErrValidationNoUserID          = errors.New("user ID is required")
	ErrValidationCredentials       = errors.New("exactly one of password or access token is required")
	ErrValidationRoomOptions       = errors.New("either a room name or a direct message target is required")
	ErrValidationInvalidUserID     = errors.New("user ID must look like @user:server")
	ErrValidationNoRoomIDOrAlias   = errors.New("room ID or alias is required")
	ErrValidationAmbiguousRoomKind = errors.New("a room cannot have both a name and a direct message target")
)
