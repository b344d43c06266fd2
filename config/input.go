package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionToggleCursor
	ActionFirePrimary
	ActionFireSecondary
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionMoveForward:   "forward",
	ActionMoveBack:      "back",
	ActionMoveLeft:      "left",
	ActionMoveRight:     "right",
	ActionJump:          "jump",
	ActionToggleCursor:  "toggle-cursor",
	ActionFirePrimary:   "fire-primary",
	ActionFireSecondary: "fire-secondary",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps an action name back to its ID.
func ParseAction(name string) (ActionID, bool) {
	for a, n := range actionNames {
		if n == name && ActionID(a) != ActionNone {
			return ActionID(a), true
		}
	}
	return ActionNone, false
}
