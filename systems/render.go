package systems

import (
	"image"
	"image/color"

	"github.com/ben256dev/seren/assets"
	"github.com/ben256dev/seren/components"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/ben256dev/seren/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const geometryLineWidth = 2

// Surface is the presentation target a frame is drawn onto. Rectangles are
// in screen pixels.
type Surface interface {
	Bounds() image.Rectangle
	Clear(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	Blit(tex *assets.Texture, r image.Rectangle)
	StrokeLine(from, to gamemath.Vec2, c color.Color)
}

// ScreenSurface draws onto an ebitengine screen image. Presenting the frame
// is left to ebitengine once Draw returns.
type ScreenSurface struct {
	screen *ebiten.Image
	op     ebiten.DrawImageOptions
}

func NewScreenSurface(screen *ebiten.Image) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

func (s *ScreenSurface) Bounds() image.Rectangle {
	return s.screen.Bounds()
}

func (s *ScreenSurface) Clear(c color.Color) {
	s.screen.Fill(c)
}

func (s *ScreenSurface) FillRect(r image.Rectangle, c color.Color) {
	vector.FillRect(s.screen,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		c, false)
}

// Blit stretches tex over r.
func (s *ScreenSurface) Blit(tex *assets.Texture, r image.Rectangle) {
	w, h := tex.Size()
	if w == 0 || h == 0 {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Scale(float64(r.Dx())/float64(w), float64(r.Dy())/float64(h))
	s.op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	s.screen.DrawImage(tex.Image(), &s.op)
}

func (s *ScreenSurface) StrokeLine(from, to gamemath.Vec2, c color.Color) {
	vector.StrokeLine(s.screen, from.X, from.Y, to.X, to.Y, geometryLineWidth, c, true)
}

// screenRect truncates a screen-space position to whole pixels.
func screenRect(pos, size gamemath.Vec2) image.Rectangle {
	x, y := int(pos.X), int(pos.Y)
	return image.Rect(x, y, x+int(size.X), y+int(size.Y))
}

// DrawWorld is the ecs renderer for the world layer.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	RenderFrame(e, NewScreenSurface(screen))
}

// RenderFrame draws the world and then counts the frame as presented.
// Nothing happens once the loop is exiting.
func RenderFrame(e *ecs.ECS, s Surface) {
	if IsExiting(e) {
		return
	}
	RenderWorld(e, s)
	PresentFrame(e)
}

// RenderWorld clears the frame and draws the level, the player and the
// decorative sprites, all transformed by the camera offset. Nothing is drawn
// once the loop is exiting.
func RenderWorld(e *ecs.ECS, s Surface) {
	if IsExiting(e) {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	s.Clear(cfg.RGB(cfg.Render.ClearColor))
	drawLevel(e, s, camera)
	drawPlayer(e, s, camera)
	drawSprites(e, s, camera, tags.Leaf)
	drawSprites(e, s, camera, tags.Ash)
}

func drawLevel(e *ecs.ECS, s Surface, camera *components.CameraData) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if bg := level.Background; bg != nil {
		w, h := bg.Size()
		s.Blit(bg, screenRect(camera.WorldToScreen(gamemath.Zero), gamemath.V(float32(w), float32(h))))
	}

	lineColor := cfg.RGB(cfg.Render.GeometryColor)
	for i := 1; i < len(level.Geometry); i++ {
		s.StrokeLine(
			camera.WorldToScreen(level.Geometry[i-1]),
			camera.WorldToScreen(level.Geometry[i]),
			lineColor,
		)
	}
}

func drawPlayer(e *ecs.ECS, s Surface, camera *components.CameraData) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	pos := camera.WorldToScreen(player.Position)
	s.FillRect(screenRect(pos, cfg.Player.Dimensions()), cfg.RGB(cfg.Player.Color))
}

// spriteSet is a donburi tag or component type that can be iterated.
type spriteSet interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

func drawSprites(e *ecs.ECS, s Surface, camera *components.CameraData, set spriteSet) {
	set.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Sprite) {
			return
		}
		sprite := components.Sprite.Get(entry)
		if sprite.Texture == nil {
			return
		}
		if sprite.FullScreen {
			s.Blit(sprite.Texture, s.Bounds())
			return
		}
		s.Blit(sprite.Texture, screenRect(camera.WorldToScreen(sprite.Position), sprite.Size))
	})
}
