package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	newDoc  key.Binding
	rename  key.Binding
	delete  key.Binding
	push    key.Binding
	pull    key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newDoc: key.NewBinding(key.WithKeys("n")),
	rename: key.NewBinding(key.WithKeys("r")),
	delete: key.NewBinding(key.WithKeys("d")),
	push:   key.NewBinding(key.WithKeys("s")),
	pull:   key.NewBinding(key.WithKeys("p")),
	copy:   key.NewBinding(key.WithKeys("c")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n", "esc")),
}
