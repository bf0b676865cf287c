package assets

import (
	"io/fs"
	"log"

	"github.com/ben256dev/seren/shared/leveldata"
)

// LoadGeometry reads the optional level point list. A missing or unreadable
// file is logged and treated as no geometry.
func LoadGeometry(fsys fs.FS, path string, maxPoints int) leveldata.Geometry {
	points, err := leveldata.LoadGeometry(fsys, path, maxPoints)
	if err != nil {
		log.Printf("Warning: no level geometry from %q: %v", path, err)
	}
	for _, p := range points {
		log.Printf("%f %f", p.X, p.Y)
	}
	return points
}

// LoadBackground renders the optional TMX tile map into a texture. It returns
// nil when the map is absent or cannot be rendered.
func LoadBackground(fsys fs.FS, tmxPath string) *Texture {
	img, info, err := leveldata.LoadTilemap(fsys, tmxPath)
	if err != nil {
		log.Printf("Warning: no tile background: %v", err)
		return nil
	}
	log.Printf("Loaded tile background %s (%dx%d px, %d layers)", tmxPath, info.Width, info.Height, info.Layers)
	return &Texture{Path: tmxPath, Source: img}
}
