package components

import (
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position     gamemath.Vec2 // world point the camera looks at
	ViewportSize gamemath.Vec2
	Origin       gamemath.Vec2 // 0.0-1.0 per axis, where Position lands on screen
}

// Offset is the translation from world space to screen space.
func (c *CameraData) Offset() gamemath.Vec2 {
	return c.Position.Negate().Add(c.ViewportSize.MulComponents(c.Origin))
}

// WorldToScreen transforms a world position into screen coordinates.
func (c *CameraData) WorldToScreen(p gamemath.Vec2) gamemath.Vec2 {
	return p.Add(c.Offset())
}

var Camera = donburi.NewComponentType[CameraData]()
