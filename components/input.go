package components

import (
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData is the per-frame input snapshot. It is rebuilt every poll;
// Previous keeps last frame's pressed state for edge detection.
type InputData struct {
	Current       [cfg.ActionCount]bool
	Previous      [cfg.ActionCount]bool
	MoveVector    gamemath.Vec2
	ExitRequested bool
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
