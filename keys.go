package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Quit       key.Binding
	Close      key.Binding
	Submit     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	SwitchAuth key.Binding

	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Preview key.Binding
	Like    key.Binding
	Delete  key.Binding
	AddCard key.Binding
	Profile key.Binding
	Avatar  key.Binding
	Search  key.Binding
	Reload  key.Binding
	Logout  key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		SwitchAuth: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "switch form")),

		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Preview: key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "preview")),
		Like:    key.NewBinding(key.WithKeys(" ", "l"), key.WithHelp("space", "like")),
		Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		AddCard: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add card")),
		Profile: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "edit profile")),
		Avatar:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "edit avatar")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "sign out")),

		Confirm: key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter/y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "n"), key.WithHelp("esc/n", "cancel")),
	}
}

// ---------------------------------------------------------------------------
// Footer hints per surface
// ---------------------------------------------------------------------------

func (k keyMap) authHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.SwitchAuth, k.Quit}
}

func (k keyMap) galleryHelp() []key.Binding {
	return []key.Binding{k.Like, k.Preview, k.AddCard, k.Delete, k.Search, k.Logout, k.Quit}
}

func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Close, k.Quit}
}

func (k keyMap) formModalHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Close, k.Quit}
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.Quit}
}

func (k keyMap) dismissHelp() []key.Binding {
	return []key.Binding{k.Close, k.Quit}
}
