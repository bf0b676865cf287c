package components

import (
	"github.com/ben256dev/seren/assets"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpriteData places a texture in the world. A sprite with FullScreen set
// ignores Position and Size and covers the whole surface.
type SpriteData struct {
	Texture    *assets.Texture
	Position   gamemath.Vec2
	Size       gamemath.Vec2
	FullScreen bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
