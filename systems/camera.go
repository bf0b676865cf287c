package systems

import (
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/ben256dev/seren/tags"
	"github.com/yohamta/donburi/ecs"
)

// FollowCamera moves the camera a fixed fraction of the way toward target.
// Applied every frame this decays the distance exponentially, so the camera
// approaches the target without ever landing on it.
func FollowCamera(camera *components.CameraData, target gamemath.Vec2, factor float32) {
	camera.Position = camera.Position.Lerp(target, factor)
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	player := components.Player.Get(playerEntry)

	target := player.Anchor(cfg.Player.Dimensions(), cfg.Player.Pivot)
	FollowCamera(camera, target, cfg.Camera.FollowFactor)
}
