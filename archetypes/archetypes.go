package archetypes

import (
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Leaf = newArchetype(
		tags.Leaf,
		components.Sprite,
	)
	Ash = newArchetype(
		tags.Ash,
		components.Sprite,
		components.Animation,
	)
	Level = newArchetype(
		components.Level,
	)
	// Game holds the per-world singletons.
	Game = newArchetype(
		components.Input,
		components.Loop,
		components.Clock,
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
