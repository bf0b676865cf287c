package factory

import (
	"io/fs"
	"log"

	"github.com/ben256dev/seren/archetypes"
	"github.com/ben256dev/seren/assets"
	"github.com/ben256dev/seren/assets/animations"
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the optional geometry and tile background from fsys.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Geometry:   assets.LoadGeometry(fsys, cfg.Assets.LevelPath, cfg.Assets.MaxLevelPoints),
		Background: assets.LoadBackground(fsys, cfg.Assets.TilemapPath),
	})
	return level
}

// CreateLeaf places the leaf sprite at the world origin.
func CreateLeaf(ecs *ecs.ECS, loader *assets.Loader) *donburi.Entry {
	leaf := archetypes.Leaf.Spawn(ecs)
	components.Sprite.SetValue(leaf, components.SpriteData{
		Texture:  loader.Load(cfg.Assets.LeafPath),
		Position: gamemath.Zero,
		Size:     gamemath.V(cfg.Render.LeafSize, cfg.Render.LeafSize),
	})
	return leaf
}

// CreateAsh spawns the full-screen ash overlay. Without an ash directory no
// entity is created and nil is returned.
func CreateAsh(ecs *ecs.ECS, loader *assets.Loader) *donburi.Entry {
	frames, err := loader.LoadDir(cfg.Assets.AshDir, cfg.Assets.MaxAshSprites)
	if err != nil {
		log.Printf("Warning: no ash overlay: %v", err)
		return nil
	}
	if len(frames) == 0 {
		return nil
	}

	ash := archetypes.Ash.Spawn(ecs)
	components.Sprite.SetValue(ash, components.SpriteData{
		Texture:    frames[0],
		FullScreen: true,
	})
	components.Animation.SetValue(ash, components.AnimationData{
		Frames:    frames,
		Animation: animations.NewAnimation(0, len(frames)-1, 1, 0),
	})
	return ash
}
