package leveldata

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// LoadTilemap parses a TMX file and renders its visible tile layers into a
// single image sized to the map. Tileset images are resolved within fsys.
func LoadTilemap(fsys fs.FS, tmxPath string) (image.Image, TilemapInfo, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, TilemapInfo{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	info := TilemapInfo{
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		return nil, info, fmt.Errorf("create renderer for %s: %w", tmxPath, err)
	}

	// Layers accumulate onto renderer.Result in file order.
	for i, layer := range levelMap.Layers {
		if !layer.Visible {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, info, fmt.Errorf("render layer %q of %s: %w", layer.Name, tmxPath, err)
		}
		info.Layers++
	}

	return renderer.Result, info, nil
}
