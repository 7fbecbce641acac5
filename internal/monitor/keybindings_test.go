package monitor

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"q quits", runeKey('q'), keys.Quit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, keys.Quit},
		{"j is next", runeKey('j'), keys.Next},
		{"down is next", tea.KeyMsg{Type: tea.KeyDown}, keys.Next},
		{"k is previous", runeKey('k'), keys.Prev},
		{"up is previous", tea.KeyMsg{Type: tea.KeyUp}, keys.Prev},
		{"enter pins", tea.KeyMsg{Type: tea.KeyEnter}, keys.Pin},
		{"p pins", runeKey('p'), keys.Pin},
		{"? is help", runeKey('?'), keys.Help},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()

	assert.NotEmpty(t, keys.ShortHelp())

	total := 0
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Desc)
			total++
		}
	}
	assert.Equal(t, 9, total)
}
