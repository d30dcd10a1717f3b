// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	toggleTab  key.Binding
	encryptTab key.Binding
	decryptTab key.Binding
	tab        key.Binding
	backtab    key.Binding
	enter      key.Binding
	esc        key.Binding
	copy       key.Binding
	about      key.Binding
	quit       key.Binding
}

var keys = keyMap{
	toggleTab:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch tab")),
	encryptTab: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "encrypt")),
	decryptTab: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "decrypt")),
	tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy saved path")),
	about:      key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "about")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.toggleTab, k.tab, k.enter, k.copy, k.about, k.quit}
}
