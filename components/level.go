package components

import (
	"github.com/ben256dev/seren/assets"
	"github.com/ben256dev/seren/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Geometry   leveldata.Geometry
	Background *assets.Texture // nil without a tile map
}

var Level = donburi.NewComponentType[LevelData]()
