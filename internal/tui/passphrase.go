// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passphraseModel is a single masked input. Enter submits, esc and ctrl+c
// cancel.
type passphraseModel struct {
	title     string
	input     textinput.Model
	cancelled bool
	errMsg    string
}

func newPassphraseModel(title string) passphraseModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passphraseModel{title: title, input: input}
}

func (m passphraseModel) value() string {
	return m.input.Value()
}

func (m passphraseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passphraseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c", key.Matches(keyMsg, keys.esc):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.input.Value() == "" {
				m.errMsg = "password must not be empty"
				return m, nil
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errMsg = ""
	return m, cmd
}

func (m passphraseModel) View() string {
	out := titleStyle.Render(m.title) + "\n\n" + m.input.View() + "\n"
	if m.errMsg != "" {
		out += errorStyle.Render(m.errMsg) + "\n"
	}
	return out + helpStyle.Render("enter submit  esc cancel") + "\n"
}
