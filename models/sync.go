// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the connection health reported by the session's sync loop.
type SyncStatus string

const (
	// SyncStopped is the initial state and the terminal state after logout.
	SyncStopped SyncStatus = "STOPPED"

	// SyncPrepared is reported once the initial sync has been applied.
	SyncPrepared SyncStatus = "PREPARED"

	// SyncSyncing is reported after every subsequent successful sync cycle.
	SyncSyncing SyncStatus = "SYNCING"

	// SyncError is reported when a sync cycle fails. The session keeps
	// retrying on its own.
	SyncError SyncStatus = "ERROR"
)

// IsLive reports whether the status means rooms are available locally.
func (s SyncStatus) IsLive() bool {
	return s == SyncPrepared || s == SyncSyncing
}

// String implements fmt.Stringer.
func (s SyncStatus) String() string {
	if s == "" {
		return string(SyncStopped)
	}
	return string(s)
}
