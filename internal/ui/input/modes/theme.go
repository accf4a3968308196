package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/ui/input/types"
)

// ThemeMode reads a theme description such as "solarized dark"
type ThemeMode struct {
	TextInputMode
}

func NewThemeMode(ti *textinput.Model) *ThemeMode {
	return &ThemeMode{
		TextInputMode: NewTextInputMode(types.ModeTheme, "theme", "Theme: ", ti),
	}
}

func (m *ThemeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	actions, consumed := m.TextInputMode.HandleKey(msg, ctx)
	for i, a := range actions {
		if submit, ok := a.(types.SubmitTextAction); ok {
			actions[i] = types.SetThemeAction{Theme: submit.Text}
		}
	}
	return actions, consumed
}
