package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"testing"
	"testing/fstest"

	"github.com/ben256dev/seren/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPlaceholderIsCheckerboard(t *testing.T) {
	tex := Placeholder()
	require.NotNil(t, tex)
	assert.True(t, tex.Placeholder)

	w, h := tex.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)

	black := color.RGBAModel.Convert(config.RGB(config.Void))
	magenta := color.RGBAModel.Convert(config.RGB(config.Magenta))
	src := tex.Source
	assert.Equal(t, black, color.RGBAModel.Convert(src.At(0, 0)))
	assert.Equal(t, magenta, color.RGBAModel.Convert(src.At(1, 0)))
	assert.Equal(t, magenta, color.RGBAModel.Convert(src.At(0, 1)))
	assert.Equal(t, black, color.RGBAModel.Convert(src.At(1, 1)))
}

func TestLoadMissingFallsBackToPlaceholder(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	tex := l.Load("leaf.png")
	require.NotNil(t, tex)
	assert.Same(t, Placeholder(), tex)
}

func TestLoadCorruptFallsBackToPlaceholder(t *testing.T) {
	l := NewLoader(fstest.MapFS{
		"leaf.png": {Data: []byte("not a png")},
	})
	assert.Same(t, Placeholder(), l.Load("leaf.png"))
}

func TestLoadDecodesAndCaches(t *testing.T) {
	l := NewLoader(fstest.MapFS{
		"leaf.png": {Data: encodePNG(t, 16, 8)},
	})

	tex := l.Load("leaf.png")
	require.NotNil(t, tex)
	assert.False(t, tex.Placeholder)
	w, h := tex.Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 8, h)

	assert.Same(t, tex, l.Load("leaf.png"))
}

func TestLoadDir(t *testing.T) {
	frame := encodePNG(t, 4, 4)
	l := NewLoader(fstest.MapFS{
		"ash/02.png":    {Data: frame},
		"ash/01.png":    {Data: frame},
		"ash/.DS_Store": {Data: []byte("junk")},
		"ash/03.png":    {Data: []byte("broken")},
		"ash/04.png":    {Data: frame},
		"ash/sub/x.png": {Data: frame},
	})

	textures, err := l.LoadDir("ash", 3)
	require.NoError(t, err)
	require.Len(t, textures, 3)
	assert.Equal(t, "ash/01.png", textures[0].Path)
	assert.Equal(t, "ash/02.png", textures[1].Path)
	assert.True(t, textures[2].Placeholder)

	all, err := l.LoadDir("ash", 49)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestLoadDirNonPositiveMax(t *testing.T) {
	l := NewLoader(fstest.MapFS{"ash/01.png": {Data: encodePNG(t, 4, 4)}})
	for _, max := range []int{0, -1} {
		textures, err := l.LoadDir("ash", max)
		require.NoError(t, err)
		assert.Empty(t, textures)
	}
}

func TestLoadDirMissing(t *testing.T) {
	_, err := NewLoader(fstest.MapFS{}).LoadDir("ash", 49)
	assert.Error(t, err)
}

func TestLoadGeometryMissingIsEmpty(t *testing.T) {
	assert.Empty(t, LoadGeometry(fstest.MapFS{}, "level", 128))
}

func TestLoadGeometry(t *testing.T) {
	fsys := fstest.MapFS{"level": {Data: []byte("1 2\n3 4\n")}}
	assert.Len(t, LoadGeometry(fsys, "level", 128), 2)
}

func TestLoadGeometryMalformedKeepsPrefix(t *testing.T) {
	fsys := fstest.MapFS{"level": {Data: []byte("1 2\nbad\n5 6\n")}}
	assert.Len(t, LoadGeometry(fsys, "level", 128), 1)
}

func TestLoadGeometryMissingLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	LoadGeometry(fstest.MapFS{}, "level", 128)
	assert.Contains(t, buf.String(), `no level geometry from "level"`)
	assert.Contains(t, buf.String(), "open level level")
	assert.NotContains(t, buf.String(), "failed to open")
}

func TestLoadBackgroundMissing(t *testing.T) {
	assert.Nil(t, LoadBackground(fstest.MapFS{}, "level.tmx"))
}
