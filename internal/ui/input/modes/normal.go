package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pagescroll/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Arrow keys follow the screen, so they swap meaning in a right-to-left layout
	step := 1
	if ctx.RightToLeft() {
		step = -1
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.StepAction{Delta: -step}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.StepAction{Delta: step}}, true

	case key.Matches(msg, m.keys.JumpBack):
		return []types.Action{types.GoToAction{Page: -20}}, true

	case key.Matches(msg, m.keys.JumpAhead):
		return []types.Action{types.GoToAction{Page: 20}}, true

	case key.Matches(msg, m.keys.Random):
		return []types.Action{types.RandomPageAction{}}, true

	case key.Matches(msg, m.keys.GoTo):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoTo}}, true

	case key.Matches(msg, m.keys.ShiftDown):
		return []types.Action{types.ShiftContentAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.ShiftUp):
		return []types.Action{types.ShiftContentAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.Direction):
		return []types.Action{types.ToggleDirectionAction{}}, true

	case key.Matches(msg, m.keys.Status):
		return []types.Action{types.ToggleStatusAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	if msg.Type == tea.KeyEsc {
		// Nothing to cancel in normal mode
		return nil, true
	}

	return nil, false
}
