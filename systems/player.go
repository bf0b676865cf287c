package systems

import (
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/ben256dev/seren/tags"
	"github.com/yohamta/donburi/ecs"
)

// MovePlayer returns the player's next position: move is normalized and
// scaled by the configured speed, then optionally clamped so the whole square
// stays inside the viewport.
func MovePlayer(pos, move gamemath.Vec2, player cfg.PlayerConfig, viewport gamemath.Vec2) gamemath.Vec2 {
	next := gamemath.Step(pos, move, player.Speed)
	if player.ClampToViewport {
		next = gamemath.ClampVec(next, gamemath.Zero, viewport.Sub(player.Dimensions()))
	}
	return next
}

func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := GetInput(e)
	if input == nil {
		return
	}

	player := components.Player.Get(playerEntry)
	viewport := gamemath.V(float32(cfg.C.Width), float32(cfg.C.Height))
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		viewport = components.Camera.Get(cameraEntry).ViewportSize
	}

	player.Position = MovePlayer(player.Position, input.MoveVector, cfg.Player, viewport)
}
