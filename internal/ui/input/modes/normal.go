package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/ui/input/keys"
	"booklike/internal/ui/input/types"
)

type NormalMode struct {
	keys keys.KeyMap
}

func NewNormalMode(km keys.KeyMap) *NormalMode {
	return &NormalMode{keys: km}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Close):
		// Esc only closes the info panel
		if ctx.InfoVisible() {
			return []types.Action{types.HideAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case key.Matches(msg, k.First):
		return []types.Action{types.NavigateAction{Direction: "first"}}, true

	case key.Matches(msg, k.Last):
		return []types.Action{types.NavigateAction{Direction: "last"}}, true

	case key.Matches(msg, k.Prev):
		return []types.Action{types.NavigateAction{Direction: "prev"}}, true

	case key.Matches(msg, k.Next):
		return []types.Action{types.NavigateAction{Direction: "next"}}, true

	case key.Matches(msg, k.Play):
		return []types.Action{types.PlayPauseAction{}}, true

	case key.Matches(msg, k.Switch):
		return []types.Action{types.SwitchAnimationAction{}}, true

	case key.Matches(msg, k.Info):
		return []types.Action{types.ToggleInfoAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, k.Theme):
		return []types.Action{types.CycleThemeAction{}}, true

	case key.Matches(msg, k.Dark):
		return []types.Action{types.ToggleDarkAction{}}, true

	case key.Matches(msg, k.High):
		return []types.Action{types.ToggleHighAction{}}, true

	case key.Matches(msg, k.GoTo):
		// a prompt would be lost under a running turn
		if ctx.Turning() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoTo}}, true

	case key.Matches(msg, k.ThemePrompt):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeTheme}}, true

	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
