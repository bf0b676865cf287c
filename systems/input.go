package systems

import (
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeyState answers whether a key is currently held down.
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeyboard reads the live keyboard through ebitengine.
type EbitenKeyboard struct{}

func (EbitenKeyboard) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// PollInput rebuilds the snapshot from the current key state. Each direction
// contributes ±1 to its axis, so opposite keys cancel and diagonals have a
// magnitude of ~1.41 until the player update normalizes them.
func PollInput(keys KeyState, input *components.InputData) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if keys.IsKeyPressed(key) {
				input.Current[actionID] = true
				break
			}
		}
	}

	move := gamemath.Zero
	if input.Current[cfg.ActionMoveUp] {
		move.Y -= 1
	}
	if input.Current[cfg.ActionMoveDown] {
		move.Y += 1
	}
	if input.Current[cfg.ActionMoveLeft] {
		move.X -= 1
	}
	if input.Current[cfg.ActionMoveRight] {
		move.X += 1
	}
	input.MoveVector = move
	input.ExitRequested = input.Current[cfg.ActionExit]
}

// GetInput returns the singleton input snapshot, or nil before the game
// entity has been created.
func GetInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

// NewInputSystem returns the system that polls keys at the top of every
// frame. Observing the exit key moves the loop to its terminal state before
// any later system runs. Must run first in the system order.
func NewInputSystem(keys KeyState) ecs.System {
	return func(e *ecs.ECS) {
		if IsExiting(e) {
			return
		}
		input := GetInput(e)
		if input == nil {
			return
		}
		PollInput(keys, input)
		if input.ExitRequested {
			RequestExit(e)
		}
	}
}
