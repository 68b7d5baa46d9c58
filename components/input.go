package components

import (
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Look is this frame's look delta in pixels of mouse motion.
	LookX, LookY float64

	cursorX, cursorY int
	hasCursor        bool
}

// TrackCursor turns an absolute cursor position into a look delta. The first
// sample after Reset only records the position.
func (d *InputData) TrackCursor(x, y int) {
	if d.hasCursor {
		d.LookX += float64(x - d.cursorX)
		d.LookY += float64(y - d.cursorY)
	}
	d.cursorX, d.cursorY = x, y
	d.hasCursor = true
}

// ResetCursor forgets the last cursor position, so the jump when the cursor
// is recaptured does not turn the view.
func (d *InputData) ResetCursor() {
	d.hasCursor = false
}

var Input = donburi.NewComponentType[InputData]()
