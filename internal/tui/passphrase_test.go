package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeRunes(m passphraseModel, s string) passphraseModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(passphraseModel)
	}
	return m
}

func TestPassphraseModel_Submit(t *testing.T) {
	m := typeRunes(newPassphraseModel("Unlock"), "s3cret")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(passphraseModel)

	assert.Equal(t, "s3cret", m.value())
	assert.False(t, m.cancelled)
	if assert.NotNil(t, cmd) {
		assert.Equal(t, tea.Quit(), cmd())
	}
	assert.NotContains(t, m.View(), "s3cret")
}

func TestPassphraseModel_EmptyIsRejected(t *testing.T) {
	m := newPassphraseModel("Unlock")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(passphraseModel)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "must not be empty")
}

func TestPassphraseModel_Cancel(t *testing.T) {
	m := typeRunes(newPassphraseModel("Unlock"), "abc")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, next.(passphraseModel).cancelled)
}
