package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the browser key bindings. Row movement inside a page is left
// to the bubbles table.
type KeyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	Sort       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	Search     key.Binding
	Clear      key.Binding
	Reload     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default browser bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevColumn: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		NextColumn: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Sort:       key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort")),
		PrevPage:   key.NewBinding(key.WithKeys("pgup", "p"), key.WithHelp("pgup/p", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("pgdown", "n"), key.WithHelp("pgdn/n", "next page")),
		FirstPage:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		LastPage:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp - implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextColumn, k.Sort, k.NextPage, k.PrevPage, k.Search, k.Quit}
}

// FullHelp - implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.Sort},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.Search, k.Clear, k.Reload, k.Quit},
	}
}
