package systems

import (
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/yohamta/donburi/ecs"
)

func GetClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}

// PresentFrame counts a rendered frame and adds one frame delay to the
// elapsed game time. It runs after the frame is drawn, not per update tick.
func PresentFrame(e *ecs.ECS) {
	clock := GetClock(e)
	if clock == nil {
		return
	}
	clock.Frames++
	clock.Elapsed += cfg.Render.FrameDelay
}
