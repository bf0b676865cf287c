package assets

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/ben256dev/seren/config"
	"github.com/hajimehoshi/ebiten/v2"

	// Image decoders available to the loader.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	_ "image/jpeg"
	_ "image/png"
)

const placeholderSize = 2

// Texture is a drawable image handle. The GPU-side image is created on first
// use so loading works before the game loop starts.
type Texture struct {
	Path        string
	Source      image.Image
	Placeholder bool

	img *ebiten.Image
}

// Image returns the ebitengine image for drawing.
func (t *Texture) Image() *ebiten.Image {
	if t.img == nil {
		t.img = ebiten.NewImageFromImage(t.Source)
	}
	return t.img
}

// Size returns the source dimensions in pixels.
func (t *Texture) Size() (int, int) {
	b := t.Source.Bounds()
	return b.Dx(), b.Dy()
}

var placeholder = newPlaceholder()

// Placeholder returns the shared 2x2 black/magenta checkerboard substituted
// for any image that cannot be loaded.
func Placeholder() *Texture {
	return placeholder
}

func newPlaceholder() *Texture {
	black := config.RGB(config.Void)
	magenta := config.RGB(config.Magenta)

	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			var c color.RGBA
			if (x+y)%2 == 0 {
				c = black
			} else {
				c = magenta
			}
			img.SetRGBA(x, y, c)
		}
	}
	return &Texture{Path: "<missing>", Source: img, Placeholder: true}
}

// Loader reads images out of a resource filesystem and caches them by path.
type Loader struct {
	fsys  fs.FS
	cache map[string]*Texture
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*Texture),
	}
}

// Load returns the texture at p. A missing or undecodable file is logged and
// the placeholder is returned instead; the result is never nil.
func (l *Loader) Load(p string) *Texture {
	if tex, ok := l.cache[p]; ok {
		return tex
	}

	src, err := l.decode(p)
	if err != nil {
		log.Printf("Warning: Failed to load image %s: %v", p, err)
		// Not cached, so a later call can pick up a file that appears.
		return Placeholder()
	}

	tex := &Texture{Path: p, Source: src}
	l.cache[p] = tex
	return tex
}

func (l *Loader) decode(p string) (image.Image, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// LoadDir loads up to max images from dir in name order. Dotfiles and
// subdirectories are skipped; images that fail to load become placeholders.
func (l *Loader) LoadDir(dir string, max int) ([]*Texture, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read sprite directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if max < 0 {
		max = 0
	}
	if len(names) > max {
		names = names[:max]
	}

	textures := make([]*Texture, 0, len(names))
	for _, name := range names {
		textures = append(textures, l.Load(path.Join(dir, name)))
	}
	return textures, nil
}
