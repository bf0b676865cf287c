package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Debug FontName = "debug"
)

// Get returns the loaded face and whether it has been loaded.
func (f FontName) Get() (font.Face, bool) {
	face, ok := fonts[f]
	return face, ok
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}
