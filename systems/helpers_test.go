package systems

import (
	"image"
	"image/color"

	"github.com/ben256dev/seren/assets"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/ben256dev/seren/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(key ebiten.Key) bool {
	return f[key]
}

type drawCall struct {
	Op    string
	Rect  image.Rectangle
	Tex   *assets.Texture
	From  gamemath.Vec2
	To    gamemath.Vec2
	Color color.Color
}

type recordingSurface struct {
	bounds image.Rectangle
	calls  []drawCall
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{bounds: image.Rect(0, 0, cfg.C.Width, cfg.C.Height)}
}

func (r *recordingSurface) Bounds() image.Rectangle { return r.bounds }

func (r *recordingSurface) Clear(c color.Color) {
	r.calls = append(r.calls, drawCall{Op: "clear", Color: c})
}

func (r *recordingSurface) FillRect(rect image.Rectangle, c color.Color) {
	r.calls = append(r.calls, drawCall{Op: "fill", Rect: rect, Color: c})
}

func (r *recordingSurface) Blit(tex *assets.Texture, rect image.Rectangle) {
	r.calls = append(r.calls, drawCall{Op: "blit", Rect: rect, Tex: tex})
}

func (r *recordingSurface) StrokeLine(from, to gamemath.Vec2, c color.Color) {
	r.calls = append(r.calls, drawCall{Op: "line", From: from, To: to, Color: c})
}

func (r *recordingSurface) ops() []string {
	ops := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		ops = append(ops, c.Op)
	}
	return ops
}

// newTestECS builds a world with the same system order as the game scene.
func newTestECS(keys KeyState) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(NewInputSystem(keys))
	e.AddSystem(WithRunningCheck(UpdateDebug))
	e.AddSystem(WithRunningCheck(UpdatePlayer))
	e.AddSystem(WithRunningCheck(UpdateCamera))
	e.AddSystem(WithRunningCheck(UpdateAnimations))

	factory.CreateGame(e)
	factory.CreateCamera(e)
	factory.CreatePlayer(e, factory.PlayerStart())
	return e
}
