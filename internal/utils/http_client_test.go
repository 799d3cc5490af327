// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("https://example.org")

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "https://example.org", client.BaseURL)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("https://a.example")
	client2 := NewHTTPClient("https://b.example")

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	client := NewHTTPClient("https://example.org")

	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, DefaultUserAgent, client.Header.Get("User-Agent"))
}
