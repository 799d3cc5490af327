// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport layer:
// a preconfigured HTTP client, transaction ID generation and Matrix
// identifier parsing.
package utils
