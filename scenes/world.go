package scenes

import (
	"io/fs"
	"sync"

	"github.com/ben256dev/seren/assets"
	cfg "github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/systems"
	"github.com/ben256dev/seren/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the frame loop: poll, update, render. Once the exit key is
// seen the scene stops updating and drawing and asks ebitengine to terminate.
type WorldScene struct {
	ecs  *ecs.ECS
	keys systems.KeyState
	res  fs.FS
	once sync.Once
}

// NewWorldScene creates the scene. keys is polled every frame and res is the
// resource filesystem the optional assets are read from.
func NewWorldScene(keys systems.KeyState, res fs.FS) *WorldScene {
	return &WorldScene{keys: keys, res: res}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if systems.IsExiting(ws.ecs) {
		return ebiten.Termination
	}

	ws.ecs.Update()

	if systems.IsExiting(ws.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input runs first and may end the loop for this frame.
	ecs.AddSystem(systems.NewInputSystem(ws.keys))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateDebug))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateAnimations))

	ecs.AddRenderer(cfg.LayerWorld, systems.DrawWorld)
	ecs.AddRenderer(cfg.LayerOverlay, systems.WithRunningRenderCheck(systems.DrawDebug))

	ws.ecs = ecs

	loader := assets.NewLoader(ws.res)

	factory.CreateGame(ws.ecs)
	factory.CreateLevel(ws.ecs, ws.res)
	factory.CreateCamera(ws.ecs)
	factory.CreatePlayer(ws.ecs, factory.PlayerStart())
	factory.CreateLeaf(ws.ecs, loader)
	factory.CreateAsh(ws.ecs, loader)
}
