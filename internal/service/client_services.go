// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/Julien-Turcotte/myMatrix/internal/adapter"
	"github.com/Julien-Turcotte/myMatrix/internal/logger"
)

type ClientServices struct {
	Engine ClientSyncEngine
}

func NewClientServices(factory adapter.SessionFactory, opts EngineOptions, log *logger.Logger) *ClientServices {
	return &ClientServices{
		Engine: NewClientSyncEngine(factory, opts, log),
	}
}
