package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Open      key.Binding
	Toggle    key.Binding
	Remove    key.Binding
	Close     key.Binding
	Retry     key.Binding
	Dismiss   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Toggle:    key.NewBinding(key.WithKeys("f", " "), key.WithHelp("f/space", "favorite")),
		Remove:    key.NewBinding(key.WithKeys("x", "d", "enter"), key.WithHelp("x", "remove")),
		Close:     key.NewBinding(key.WithKeys("esc", "enter", "q"), key.WithHelp("esc", "close")),
		Retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	}
}

// helpFor returns the bindings worth showing for the current state and focus
func (m Model) helpFor() []key.Binding {
	k := m.keys
	switch {
	case m.notice != "":
		return []key.Binding{k.Dismiss}
	case m.state == StateError:
		return []key.Binding{k.Retry, k.Quit}
	case m.state == StateDetail:
		return []key.Binding{k.Close}
	}

	switch m.focus {
	case FocusSearch:
		return []key.Binding{k.NextFocus, key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))}
	case FocusFilter:
		return []key.Binding{k.Left, k.Right, k.NextFocus, k.Quit}
	case FocusCards:
		return []key.Binding{k.Up, k.Down, k.Open, k.Toggle, k.NextFocus, k.Quit}
	case FocusFavorites:
		return []key.Binding{k.Up, k.Down, k.Remove, k.NextFocus, k.Quit}
	}
	return nil
}
