package factory

import (
	"github.com/ben256dev/seren/archetypes"
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at pos.
func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{Position: pos})
	return player
}

// PlayerStart is the spawn position that centers the player in the window.
func PlayerStart() gamemath.Vec2 {
	viewport := gamemath.V(float32(cfg.C.Width), float32(cfg.C.Height))
	return viewport.Sub(cfg.Player.Dimensions()).Scale(0.5)
}
