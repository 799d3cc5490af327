// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/Julien-Turcotte/myMatrix/internal/service"
	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin = "login"
	pageChat  = "chat"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and the build info window
// 3) re-arms the engine change subscription and forwards changes
// 4) switches pages on login and logout
// 5) delegates all other messages to the active page
type RootModel struct {
	engine  service.ClientSyncEngine
	pages   map[string]tea.Model
	current string
	size    tea.WindowSizeMsg

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(engine service.ClientSyncEngine, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		engine:    engine,
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForChanges(r.engine.Changes())}
	if page := r.page(); page != nil {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.size = msg
		// every page needs the size, not only the visible one
		var cmds []tea.Cmd
		for name, page := range r.pages {
			updated, cmd := page.Update(msg)
			r.pages[name] = updated
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	case engineChangedMsg:
		return r.forward(msg, waitForChanges(r.engine.Changes()))
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		model, cmd := r.forward(msg)
		if msg.Err != nil {
			return model, cmd
		}
		next, navCmd := model.(RootModel).navigate(NavigateTo{Page: pageChat})
		return next, tea.Batch(cmd, navCmd)
	case logoutDoneMsg:
		return r.navigate(NavigateTo{Page: pageLogin})
	}

	return r.forward(msg)
}

func (r RootModel) forward(msg tea.Msg, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	page := r.page()
	if page == nil {
		return r, tea.Batch(extra...)
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, tea.Batch(append(extra, cmd)...)
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	cmds := []tea.Cmd{next.Init()}
	if r.size.Width > 0 {
		size := r.size
		cmds = append(cmds, func() tea.Msg { return size })
	}
	if nav.Payload != nil {
		cmds = append(cmds, func() tea.Msg { return nav.Payload })
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page := r.page()
	if page == nil {
		return renderPage("myMatrix", "", "")
	}
	return page.View()
}
