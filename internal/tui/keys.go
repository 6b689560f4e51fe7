package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Save    key.Binding
	Delete  key.Binding
	Paste   key.Binding
	Export  key.Binding
	Edit    key.Binding
	Left    key.Binding
	Right   key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pindah")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "kembali")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "simpan")),
		Delete:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "hapus")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "tempel")),
		Export:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "export csv")),
		Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ubah sel")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "kolom")),
		Right:   key.NewBinding(key.WithKeys("right")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "batal")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "keluar")),
	}
}

// ShortHelp lists the bindings shown on the help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Delete, k.Paste, k.Export, k.Edit, k.Left, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Save, k.Delete},
		{k.Paste, k.Export, k.Edit, k.Left, k.Dismiss, k.Quit},
	}
}
