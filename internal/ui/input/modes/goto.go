package modes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"booklike/internal/ui/input/types"
)

// GoToMode asks for a page number and jumps to the pair holding it
type GoToMode struct {
	TextInputMode
}

func NewGoToMode(ti *textinput.Model) *GoToMode {
	return &GoToMode{
		TextInputMode: NewTextInputMode(types.ModeGoTo, "goto", "Go to page: ", ti),
	}
}

// HandleKey turns a submitted page number into a jump. Pages count from 1
// as printed; pair p holds pages 2p+1 and 2p+2.
func (m *GoToMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	actions, consumed := m.TextInputMode.HandleKey(msg, ctx)
	for i, a := range actions {
		submit, ok := a.(types.SubmitTextAction)
		if !ok {
			continue
		}
		pair, ok := PairForPage(submit.Text, ctx.PairCount())
		if !ok {
			actions[i] = types.CancelTextAction{}
			continue
		}
		actions[i] = types.GoToAction{Pair: pair}
	}
	return actions, consumed
}

// PairForPage parses a 1-based page number into a pair index
func PairForPage(text string, pairs int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > 2*pairs {
		return 0, false
	}
	return (n - 1) / 2, true
}
