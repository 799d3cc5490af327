// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	buildInfo  key.Binding
	authMode   key.Binding
	switcher   key.Binding
	selectRoom key.Binding
	newConv    key.Binding
	leave      key.Binding
	copyRoomID key.Binding
	logout     key.Binding
	scrollUp   key.Binding
	scrollDown key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up")),
	down:       key.NewBinding(key.WithKeys("down")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo:  key.NewBinding(key.WithKeys("f1")),
	authMode:   key.NewBinding(key.WithKeys("ctrl+t")),
	switcher:   key.NewBinding(key.WithKeys("ctrl+k")),
	selectRoom: key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9")),
	newConv:    key.NewBinding(key.WithKeys("ctrl+n")),
	leave:      key.NewBinding(key.WithKeys("ctrl+w")),
	copyRoomID: key.NewBinding(key.WithKeys("ctrl+y")),
	logout:     key.NewBinding(key.WithKeys("ctrl+o")),
	scrollUp:   key.NewBinding(key.WithKeys("pgup")),
	scrollDown: key.NewBinding(key.WithKeys("pgdown")),
	yes:        key.NewBinding(key.WithKeys("y", "Y", "enter")),
	no:         key.NewBinding(key.WithKeys("n", "N", "esc")),
}

// roomShortcutIndex returns the zero-based sidebar index for alt+1..alt+9.
func roomShortcutIndex(k string) (int, bool) {
	if len(k) != len("alt+1") || k[:4] != "alt+" || k[4] < '1' || k[4] > '9' {
		return 0, false
	}
	return int(k[4] - '1'), true
}
