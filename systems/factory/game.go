package factory

import (
	"github.com/ben256dev/seren/archetypes"
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the singleton entity holding input, loop state, clock
// and debug settings.
func CreateGame(ecs *ecs.ECS) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Loop.SetValue(game, components.LoopData{State: components.LoopRunning})
	components.Debug.SetValue(game, components.DebugData{Enabled: cfg.Debug.Overlay})
	return game
}
