package types

// Navigation actions
type NavigateAction struct {
	Direction string // "prev", "next", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// GoToAction jumps to a pair without animation
type GoToAction struct {
	Pair int
}

func (a GoToAction) Type() string { return "goto" }

// Animation actions
type PlayPauseAction struct{}

func (a PlayPauseAction) Type() string { return "play_pause" }

type SwitchAnimationAction struct{}

func (a SwitchAnimationAction) Type() string { return "switch_animation" }

// Theme actions
type CycleThemeAction struct{}

func (a CycleThemeAction) Type() string { return "cycle_theme" }

type ToggleDarkAction struct{}

func (a ToggleDarkAction) Type() string { return "toggle_dark" }

type ToggleHighAction struct{}

func (a ToggleHighAction) Type() string { return "toggle_high" }

type SetThemeAction struct {
	Theme string
}

func (a SetThemeAction) Type() string { return "set_theme" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
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

// Panel actions
type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type HideAction struct{}

func (a HideAction) Type() string { return "hide" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
