package components

import (
	"github.com/ben256dev/seren/assets"
	"github.com/ben256dev/seren/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData cycles a sprite through a list of frames. The frame index
// lives in Animation and is advanced by the update step only.
type AnimationData struct {
	Frames    []*assets.Texture
	Animation *animations.Animation
}

// Current returns the texture for the current frame, or nil with no frames.
func (a *AnimationData) Current() *assets.Texture {
	if len(a.Frames) == 0 || a.Animation == nil {
		return nil
	}
	return a.Frames[a.Animation.Frame()%len(a.Frames)]
}

var Animation = donburi.NewComponentType[AnimationData]()
