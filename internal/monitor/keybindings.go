package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Pin      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Close    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next chip"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous chip"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first chip"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last chip"),
		),
		Pin: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter/p", "pin / unpin chip"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// ShortHelp implements help.KeyMap for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pin, k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.Pin, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input and updates model state.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it instead of quitting
	if m.showHelp && key.Matches(msg, m.keys.Close) {
		m.showHelp = false
		return true, nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.Next):
		err = m.navigator.SelectNext()

	case key.Matches(msg, m.keys.Prev):
		err = m.navigator.SelectPrevious()

	case key.Matches(msg, m.keys.First):
		err = m.navigator.SelectFirst()

	case key.Matches(msg, m.keys.Last):
		err = m.navigator.SelectLast()

	case key.Matches(msg, m.keys.Pin):
		err = m.navigator.TogglePin()

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		// The viewport's own keymap scrolls on pgup/pgdown.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return true, cmd

	default:
		return false, nil
	}

	if err != nil {
		m.log.Debug("navigation: %v", err)
	}
	m.refresh()
	return true, nil
}
