package systems

import (
	"github.com/ben256dev/seren/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations points each sprite at its animation's current frame, then
// advances the animation one tick for the next frame.
func UpdateAnimations(e *ecs.ECS) {
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.Animation == nil {
			return
		}
		if entry.HasComponent(components.Sprite) {
			if tex := anim.Current(); tex != nil {
				components.Sprite.Get(entry).Texture = tex
			}
		}

		anim.Animation.Update()
	})
}
