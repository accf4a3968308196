package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the key bindings of normal mode
type KeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	First       key.Binding
	Last        key.Binding
	Play        key.Binding
	Switch      key.Binding
	Info        key.Binding
	Close       key.Binding
	Help        key.Binding
	Theme       key.Binding
	Dark        key.Binding
	High        key.Binding
	GoTo        key.Binding
	ThemePrompt key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("pgup", "backspace", "left", "up", "k", "h"),
			key.WithHelp("←/h", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("pgdown", "enter", "right", "down", "j", "l"),
			key.WithHelp("→/l", "forward"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Play: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch animation"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close info"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark"),
		),
		High: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "high contrast"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to page"),
		),
		ThemePrompt: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "choose theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp is shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Play, k.Info, k.Help, k.Quit}
}

// FullHelp is shown in the help pager
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.GoTo},
		{k.Play, k.Switch},
		{k.Theme, k.Dark, k.High, k.ThemePrompt},
		{k.Info, k.Close, k.Help, k.Quit},
	}
}
