package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard bindings for the TUI.
type KeyMap struct {
	NextScreen key.Binding
	PrevScreen key.Binding
	Home       key.Binding
	Breathing  key.Binding
	Music      key.Binding
	Tips       key.Binding
	Progress   key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Enter      key.Binding
	Toggle     key.Binding
	Pattern    key.Binding
	Sound      key.Binding
	Favorite   key.Binding
	Category   key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Export     key.Binding
	ExportJSON key.Binding
	Feedback   key.Binding
	Submit     key.Binding
	Theme      key.Binding
	Escape     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextScreen: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		PrevScreen: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev screen")),
		Home:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Breathing:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "breathe")),
		Music:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "music")),
		Tips:       key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "tips")),
		Progress:   key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "progress")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "less")),
		Right:      key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "more")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "start/pause")),
		Pattern:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pattern")),
		Sound:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "calming sounds")),
		Favorite:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolumeDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "volume down")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export pdf")),
		ExportJSON: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export json")),
		Feedback:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "feedback")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send feedback")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScreen, k.Enter, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextScreen, k.PrevScreen, k.Home, k.Breathing, k.Music, k.Tips, k.Progress},
		{k.Up, k.Down, k.Left, k.Right, k.Enter},
		{k.Toggle, k.Pattern, k.Sound, k.Favorite, k.Category, k.VolumeUp, k.VolumeDown},
		{k.Feedback, k.Submit, k.Export, k.ExportJSON, k.Theme, k.Help, k.Quit},
	}
}
