package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagescroll/internal/ui/input/types"
)

type stubContext struct {
	page  int
	shift int
	rtl   bool
}

func (c stubContext) CurrentPage() int  { return c.page }
func (c stubContext) ContentShift() int { return c.shift }
func (c stubContext) RightToLeft() bool { return c.rtl }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeBindings(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := stubContext{}

	cases := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, types.StepAction{Delta: -1}},
		{tea.KeyMsg{Type: tea.KeyRight}, types.StepAction{Delta: 1}},
		{runes("h"), types.StepAction{Delta: -1}},
		{runes("l"), types.StepAction{Delta: 1}},
		{runes("["), types.GoToAction{Page: -20}},
		{runes("]"), types.GoToAction{Page: 20}},
		{runes("r"), types.RandomPageAction{}},
		{runes("+"), types.ShiftContentAction{Delta: 1}},
		{runes("-"), types.ShiftContentAction{Delta: -1}},
		{runes("m"), types.ToggleDirectionAction{}},
		{runes("s"), types.ToggleStatusAction{}},
		{runes("?"), types.ToggleHelpAction{}},
		{runes("q"), types.QuitAction{}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}
	for _, c := range cases {
		actions, _ := h.HandleKey(c.msg, ctx)
		require.Len(t, actions, 1, "key %q", c.msg.String())
		assert.Equal(t, c.want, actions[0], "key %q", c.msg.String())
	}
}

func TestArrowsFollowLayoutDirection(t *testing.T) {
	h := New(types.DefaultKeyMap())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, stubContext{rtl: true})
	assert.Equal(t, []types.Action{types.StepAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(runes("l"), stubContext{rtl: true})
	assert.Equal(t, []types.Action{types.StepAction{Delta: -1}}, actions)
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	h := New(types.DefaultKeyMap())

	actions, cmd := h.HandleKey(runes("z"), stubContext{})
	assert.Empty(t, actions)
	assert.Nil(t, cmd)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestGoToModeSubmit(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := stubContext{}

	_, cmd := h.HandleKey(runes("g"), ctx)
	assert.NotNil(t, cmd, "entering a text mode starts the cursor blink")
	require.Equal(t, types.ModeGoTo, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "Go to page: ", h.Prompt())

	var last []types.Action
	for _, r := range "-42" {
		last, _ = h.HandleKey(runes(string(r)), ctx)
	}
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "-42"}}, last)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "-42", Mode: types.ModeGoTo}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
	assert.Empty(t, h.Prompt())
}

func TestGoToModeCancel(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := stubContext{}

	h.HandleKey(runes("g"), ctx)
	h.HandleKey(runes("7"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	// the input starts empty next time
	h.HandleKey(runes("g"), ctx)
	assert.Equal(t, "", h.TextInput().Value())
}

func TestTextModeSwallowsNormalBindings(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := stubContext{}

	h.HandleKey(runes("g"), ctx)
	actions, _ := h.HandleKey(runes("q"), ctx)

	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "q"}}, actions)
	assert.Equal(t, types.ModeGoTo, h.CurrentMode())
}

func TestReset(t *testing.T) {
	h := New(types.DefaultKeyMap())
	h.HandleKey(runes("g"), stubContext{})

	h.Reset()

	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.Update(tea.WindowSizeMsg{}))
}
