// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the sync engine for a single process
// lifecycle and releases the Matrix session on exit.
package client
