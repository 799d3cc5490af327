// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/Julien-Turcotte/myMatrix/internal/utils"
	"github.com/Julien-Turcotte/myMatrix/models"
)

func validateCredentials(creds models.Credentials) error {
	if strings.TrimSpace(creds.BaseURL) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrValidationNoBaseURL)
	}
	if strings.TrimSpace(creds.UserID) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrValidationNoUserID)
	}

	hasPassword := creds.Password != ""
	hasToken := strings.TrimSpace(creds.AccessToken) != ""
	if hasPassword == hasToken {
		return fmt.Errorf("%w: %w", ErrValidation, ErrValidationCredentials)
	}

	return nil
}

// buildCreateRoomRequest maps room creation options to a request. Exactly
// one of a name or a direct message target must be given.
func buildCreateRoomRequest(opts models.CreateRoomOptions) (adapter.CreateRoomRequest, error) {
	name := strings.TrimSpace(opts.Name)
	invitee := strings.TrimSpace(opts.InviteUserID)
	direct := opts.IsDirect && invitee != ""

	switch {
	case direct && name != "":
		return adapter.CreateRoomRequest{}, fmt.Errorf("%w: %w", ErrValidation, ErrValidationAmbiguousRoomKind)
	case direct:
		if !utils.IsUserID(invitee) {
			return adapter.CreateRoomRequest{}, fmt.Errorf("%w: %w: %q", ErrValidation, ErrValidationInvalidUserID, invitee)
		}
		return adapter.CreateRoomRequest{
			Invite:   []string{invitee},
			IsDirect: true,
			Preset:   adapter.PresetTrustedPrivateChat,
		}, nil
	case name != "":
		return adapter.CreateRoomRequest{Name: name}, nil
	default:
		return adapter.CreateRoomRequest{}, fmt.Errorf("%w: %w", ErrValidation, ErrValidationRoomOptions)
	}
}
