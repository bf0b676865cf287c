package components

import (
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData is the top-left corner of the player square in world space.
type PlayerData struct {
	Position gamemath.Vec2
}

// Anchor returns the point at pivot within a square of the given size.
func (p *PlayerData) Anchor(size, pivot gamemath.Vec2) gamemath.Vec2 {
	return p.Position.Add(size.MulComponents(pivot))
}

var Player = donburi.NewComponentType[PlayerData]()
