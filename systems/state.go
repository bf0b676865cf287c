package systems

import (
	"github.com/ben256dev/seren/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetLoop returns the singleton loop state, or nil before the game entity
// has been created.
func GetLoop(e *ecs.ECS) *components.LoopData {
	entry, ok := components.Loop.First(e.World)
	if !ok {
		return nil
	}
	return components.Loop.Get(entry)
}

// IsExiting reports whether the loop has reached its terminal state.
func IsExiting(e *ecs.ECS) bool {
	loop := GetLoop(e)
	return loop != nil && loop.State == components.LoopExiting
}

// RequestExit moves the loop into its terminal state. There is no way back.
func RequestExit(e *ecs.ECS) {
	if loop := GetLoop(e); loop != nil {
		loop.State = components.LoopExiting
	}
}

// WithRunningCheck wraps a system to skip execution once the loop is exiting.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsExiting(e) {
			return
		}
		system(e)
	}
}

// Renderer is the signature ecs.AddRenderer expects for a layer.
type Renderer func(e *ecs.ECS, screen *ebiten.Image)

// WithRunningRenderCheck is WithRunningCheck for renderers.
func WithRunningRenderCheck(renderer Renderer) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if IsExiting(e) {
			return
		}
		renderer(e, screen)
	}
}
