// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/Julien-Turcotte/myMatrix/internal/service"
	"github.com/Julien-Turcotte/myMatrix/internal/utils"
	"github.com/Julien-Turcotte/myMatrix/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	authPassword authMode = iota
	authToken
)

const (
	fieldHomeserver = iota
	fieldUserID
	fieldSecret
	fieldDeviceID
)

// LoginModel is the Bubble Tea model for the login screen. It collects the
// homeserver, user ID, a password or access token and an optional device ID,
// then dispatches an async login command. A successful [LoginResult] is
// handled by [RootModel], which switches to the chat page.
type LoginModel struct {
	ctx    context.Context
	engine service.ClientSyncEngine

	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] prefilled with defaults. The first
// empty field receives focus.
func NewLoginModel(ctx context.Context, engine service.ClientSyncEngine, defaults models.Credentials) *LoginModel {
	newInput := func(placeholder, value string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 256
		in.Width = 40
		in.SetValue(value)
		return in
	}

	homeserver := defaults.BaseURL
	if homeserver == "" {
		homeserver = "https://matrix.org"
	}

	secret := newInput("password", "")
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'

	m := &LoginModel{
		ctx:    ctx,
		engine: engine,
		inputs: []textinput.Model{
			newInput("https://matrix.org", homeserver),
			newInput("@user:matrix.org", defaults.UserID),
			secret,
			newInput("device id (optional)", defaults.DeviceID),
		},
	}

	m.focus = fieldSecret
	if defaults.UserID == "" {
		m.focus = fieldUserID
	}
	m.inputs[m.focus].Focus()
	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; on error, populates errMsg.
//   - ctrl+t         toggles between password and access token login.
//   - tab/shift+tab  moves focus between inputs.
//   - enter          validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.inputs[fieldSecret].SetValue("")
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && !m.submitting {
		switch {
		case key.Matches(keyMsg, keys.authMode):
			m.toggleMode()
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			creds, errMsg := m.credentials()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(creds)
		}
	}
	if ok && m.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	secretLabel := "Password   "
	if m.mode == authToken {
		secretLabel = "Token      "
	}

	var b strings.Builder
	b.WriteString("Auth mode: ")
	if m.mode == authPassword {
		b.WriteString(selectedStyle.Render("[password]") + " access token")
	} else {
		b.WriteString("password " + selectedStyle.Render("[access token]"))
	}
	b.WriteString("\n\n")

	labels := []string{"Homeserver ", "User ID    ", secretLabel, "Device ID  "}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("│ ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[connecting...]\n")
	} else {
		b.WriteString("\n[login]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("myMatrix LOGIN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+t: password/token │ enter: login │ f1: about")
}

// credentials validates the form and returns the login request, or a
// message explaining what is missing.
func (m *LoginModel) credentials() (models.Credentials, string) {
	creds := models.Credentials{
		BaseURL:  strings.TrimSpace(m.inputs[fieldHomeserver].Value()),
		UserID:   strings.TrimSpace(m.inputs[fieldUserID].Value()),
		DeviceID: strings.TrimSpace(m.inputs[fieldDeviceID].Value()),
	}

	secret := m.inputs[fieldSecret].Value()
	if m.mode == authToken {
		creds.AccessToken = strings.TrimSpace(secret)
		secret = creds.AccessToken
	} else {
		creds.Password = secret
	}

	switch {
	case creds.BaseURL == "" || creds.UserID == "" || secret == "":
		if m.mode == authToken {
			return creds, "homeserver, user id and access token are required"
		}
		return creds, "homeserver, user id and password are required"
	case !utils.IsUserID(creds.UserID):
		return creds, "user id must look like @user:server.com"
	}

	return creds, ""
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	engine := m.engine

	return func() tea.Msg {
		return LoginResult{Err: engine.Login(ctx, creds)}
	}
}

func (m *LoginModel) toggleMode() {
	secret := &m.inputs[fieldSecret]
	secret.SetValue("")
	if m.mode == authPassword {
		m.mode = authToken
		secret.Placeholder = "syt_..."
	} else {
		m.mode = authPassword
		secret.Placeholder = "password"
	}
	m.errMsg = ""
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
