package factory

import (
	"github.com/ben256dev/seren/archetypes"
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera sized to the window. It starts looking at the
// viewport's origin point, which is where a centered player's anchor sits.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	viewport := gamemath.V(float32(cfg.C.Width), float32(cfg.C.Height))
	components.Camera.SetValue(camera, components.CameraData{
		Position:     viewport.MulComponents(cfg.Camera.Origin),
		ViewportSize: viewport,
		Origin:       cfg.Camera.Origin,
	})
	return camera
}
