package main

import (
	"log"
	"os"

	"github.com/ben256dev/seren/config"
	"github.com/ben256dev/seren/fonts"
	"github.com/ben256dev/seren/scenes"
	"github.com/ben256dev/seren/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if err := fonts.LoadFontWithSize(fonts.Debug, goregular.TTF, 14); err != nil {
		log.Printf("Warning: debug overlay disabled: %v", err)
	}

	return &Game{
		scene: scenes.NewWorldScene(systems.EbitenKeyboard{}, os.DirFS(config.Assets.Dir)),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Render.TPS())

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatalf("Failed to run game: %v", err)
	}
}
