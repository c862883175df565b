package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/yildizm/tipcalc/internal/config"
)

// KeyMap binds keyboard keys to the three device buttons plus quit and help.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
	Help   key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Select, km.Help, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Select},
		{km.Help, km.Quit},
	}
}

// KeyMap implements help.KeyMap
var _ help.KeyMap = KeyMap{}

// DefaultKeyMap returns the bindings of the default configuration
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

// NewKeyMap builds bindings from configured key lists
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Up:     newBinding(keys.Up, "row up / next digit"),
		Down:   newBinding(keys.Down, "row down / prev digit"),
		Select: newBinding(keys.Select, "edit / enter digit"),
		Quit:   newBinding(keys.Quit, "quit"),
		Help:   newBinding(keys.Help, "help"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders a key list for the help footer
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}
