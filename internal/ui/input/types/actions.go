package types

// Navigation actions

// StepAction moves relative to the current page
type StepAction struct {
	Delta int
}

func (a StepAction) Type() string { return "step" }

// GoToAction navigates to an absolute page
type GoToAction struct {
	Page int
}

func (a GoToAction) Type() string { return "goto" }

type RandomPageAction struct{}

func (a RandomPageAction) Type() string { return "random_page" }

// Content actions

// ShiftContentAction changes the number added to every displayed page
type ShiftContentAction struct {
	Delta int
}

func (a ShiftContentAction) Type() string { return "shift_content" }

type ToggleDirectionAction struct{}

func (a ToggleDirectionAction) Type() string { return "toggle_direction" }

type ToggleStatusAction struct{}

func (a ToggleStatusAction) Type() string { return "toggle_status" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
