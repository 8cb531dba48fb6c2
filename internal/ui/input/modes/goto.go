package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"pagescroll/internal/ui/input/types"
)

// GoToMode reads a page number
type GoToMode struct {
	TextInputMode
}

func NewGoToMode(ti *textinput.Model) *GoToMode {
	ti.CharLimit = 12
	return &GoToMode{
		TextInputMode: NewTextInputMode(types.ModeGoTo, "goto", "Go to page: ", ti),
	}
}
