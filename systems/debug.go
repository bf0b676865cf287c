package systems

import (
	"fmt"

	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/fonts"
	"github.com/ben256dev/seren/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a different face type
	"github.com/yohamta/donburi/ecs"
)

const (
	debugMargin     = 8
	debugLineHeight = 16
)

func GetDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		return nil
	}
	return components.Debug.Get(entry)
}

// UpdateDebug flips the overlay on the frame the toggle key goes down.
func UpdateDebug(e *ecs.ECS) {
	input := GetInput(e)
	debug := GetDebug(e)
	if input == nil || debug == nil {
		return
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		debug.Enabled = !debug.Enabled
	}
}

// DebugLines describes the current frame for the overlay.
func DebugLines(e *ecs.ECS) []string {
	var lines []string
	if playerEntry, ok := tags.Player.First(e.World); ok {
		p := components.Player.Get(playerEntry).Position
		lines = append(lines, fmt.Sprintf("player %.1f, %.1f", p.X, p.Y))
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		c := components.Camera.Get(cameraEntry).Position
		lines = append(lines, fmt.Sprintf("camera %.1f, %.1f", c.X, c.Y))
	}
	if clock := GetClock(e); clock != nil {
		lines = append(lines, fmt.Sprintf("time %s (%d frames)", clock.Elapsed, clock.Frames))
	}
	if loop := GetLoop(e); loop != nil {
		lines = append(lines, "state "+loop.State.String())
	}
	return lines
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debug := GetDebug(e)
	if debug == nil || !debug.Enabled {
		return
	}
	face, ok := fonts.Debug.Get()
	if !ok {
		return
	}
	for i, line := range DebugLines(e) {
		text.Draw(screen, line, face, debugMargin, debugMargin+(i+1)*debugLineHeight, cfg.Debug.Color)
	}
}
