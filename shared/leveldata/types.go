// Package leveldata parses the optional static level files: the plain-text
// point list and the TMX tile background. It has no dependencies on
// ebitengine or donburi, pure data only.
package leveldata

import "github.com/ben256dev/seren/shared/gamemath"

// Geometry is an ordered list of world-space points read from the level file.
type Geometry []gamemath.Vec2

// TilemapInfo describes a loaded TMX map in pixels.
type TilemapInfo struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     int
}
