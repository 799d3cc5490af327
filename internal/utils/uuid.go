// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/google/uuid"
)

// TxnIDGenerator produces client transaction IDs for message sends.
// IDs are time-ordered UUIDv7 strings without dashes, which keeps them
// path-safe and sortable.
type TxnIDGenerator struct {
	prefix string
}

func NewTxnIDGenerator(prefix string) *TxnIDGenerator {
	return &TxnIDGenerator{prefix: prefix}
}

func (g *TxnIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	return g.prefix + strings.ReplaceAll(v7.String(), "-", "")
}
