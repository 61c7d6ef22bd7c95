package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	back      key.Binding
	tab       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	toggle    key.Binding
	copy      key.Binding
	open      key.Binding
	share     key.Binding
	newFolder key.Binding
	rename    key.Binding
	delete    key.Binding
	yes       key.Binding
	no        key.Binding
	titles    key.Binding
	urls      key.Binding
	markdown  key.Binding
	sort      key.Binding
	group     key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	back:      key.NewBinding(key.WithKeys("esc", "backspace")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	copy:      key.NewBinding(key.WithKeys("c")),
	open:      key.NewBinding(key.WithKeys("o")),
	share:     key.NewBinding(key.WithKeys("x")),
	newFolder: key.NewBinding(key.WithKeys("n")),
	rename:    key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("d")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	titles:    key.NewBinding(key.WithKeys("t")),
	urls:      key.NewBinding(key.WithKeys("u")),
	markdown:  key.NewBinding(key.WithKeys("m")),
	sort:      key.NewBinding(key.WithKeys("s")),
	group:     key.NewBinding(key.WithKeys("g")),
}
