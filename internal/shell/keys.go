package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the shell's dispatch table. Handlers look bindings up here
// rather than matching raw key strings.
type KeyMap struct {
	Commit      key.Binding
	Check       key.Binding
	SwitchFocus key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	Dismiss     key.Binding

	MoveUp, MoveDown, MoveLeft, MoveRight     key.Binding
	GrowDown, ShrinkUp, GrowRight, ShrinkLeft key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Check:       key.NewBinding(key.WithKeys(" ", "x", "enter"), key.WithHelp("space", "done")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		Dismiss:     key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "ok")),

		MoveUp:    key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑↓←→", "move")),
		MoveDown:  key.NewBinding(key.WithKeys("alt+down")),
		MoveLeft:  key.NewBinding(key.WithKeys("alt+left")),
		MoveRight: key.NewBinding(key.WithKeys("alt+right")),

		GrowDown:   key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↑↓←→", "resize")),
		ShrinkUp:   key.NewBinding(key.WithKeys("shift+up")),
		GrowRight:  key.NewBinding(key.WithKeys("shift+right")),
		ShrinkLeft: key.NewBinding(key.WithKeys("shift+left")),
	}
}
