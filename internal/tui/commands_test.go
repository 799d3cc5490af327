// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		line string
		want inputCommand
	}{
		{"", inputCommand{kind: inputNone}},
		{"   ", inputCommand{kind: inputNone}},
		{"hello", inputCommand{kind: inputText, arg: "hello"}},
		{"  padded  ", inputCommand{kind: inputText, arg: "padded"}},
		{"/join #room:x", inputCommand{kind: inputJoin, arg: "#room:x"}},
		{"/join   ", inputCommand{kind: inputText, arg: "/join"}},
		{"/leave", inputCommand{kind: inputLeave}},
		{"/leave now", inputCommand{kind: inputText, arg: "/leave now"}},
		{"/me waves", inputCommand{kind: inputEmote, arg: "waves"}},
		{"/me", inputCommand{kind: inputText, arg: "/me"}},
		{"/shrug", inputCommand{kind: inputText, arg: "/shrug"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInput(tt.line))
		})
	}
}

func TestWaitForChanges(t *testing.T) {
	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	assert.Equal(t, engineChangedMsg{}, waitForChanges(ch)())

	closed := make(chan struct{})
	close(closed)
	assert.Nil(t, waitForChanges(closed)())
}

func TestCmdCopy(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var got string
	writeClipboard = func(s string) error {
		got = s
		return nil
	}

	msg := cmdCopy("!room:x")()
	require.IsType(t, copiedMsg{}, msg)
	assert.NoError(t, msg.(copiedMsg).err)
	assert.Equal(t, "!room:x", got)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	assert.Error(t, cmdCopy("x")().(copiedMsg).err)
}
