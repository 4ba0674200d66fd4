package components

import (
	cfg "github.com/automoto/neon-arena/config"
	"github.com/yohamta/donburi"
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
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the temporal state of an action.
func (in *InputData) Action(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[action],
		JustPressed:  in.Current[action] && !in.Previous[action],
		JustReleased: !in.Current[action] && in.Previous[action],
	}
}

var Input = donburi.NewComponentType[InputData]()
